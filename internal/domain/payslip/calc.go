package payslip

// EntryAmount resolves one payment entry's contribution to gross pay. Hourly
// and overtime entries with both quantity and rate derive quantity times
// rate; every other case takes the entered amount as-is.
func EntryAmount(entry PaymentEntry) float64 {
	switch entry.Kind {
	case EntryKindHourly, EntryKindOvertime:
		if entry.Quantity != nil && entry.Rate != nil {
			return *entry.Quantity * *entry.Rate
		}
		return entry.Amount
	case EntryKindFixed, EntryKindBonus:
		return entry.Amount
	}
	return entry.Amount
}

// NormalizeEntries recomputes each entry's amount in place so derived amounts
// never go stale after an edit.
func NormalizeEntries(entries []PaymentEntry) {
	for i := range entries {
		entries[i].Amount = EntryAmount(entries[i])
	}
}

// GrossPay sums entry amounts. Callers must write the result back to the
// draft whenever the entry list changes.
func GrossPay(entries []PaymentEntry) float64 {
	var gross float64
	for _, entry := range entries {
		gross += EntryAmount(entry)
	}
	return gross
}

// NetPay is gross minus total deductions. The result may be negative when
// deductions exceed gross; it is deliberately not clamped so the display
// layer can warn instead of the engine hiding it.
func NetPay(grossPay float64, deductions []Deduction) float64 {
	return grossPay - TotalDeductions(deductions)
}

// CurrentFigures computes the gross/deductions/net triple for a draft after
// normalizing its entries.
func CurrentFigures(data *Data) Figures {
	NormalizeEntries(data.PaymentEntries)
	data.GrossPay = GrossPay(data.PaymentEntries)
	total := TotalDeductions(data.Deductions)
	return Figures{
		GrossPay:        data.GrossPay,
		TotalDeductions: total,
		NetPay:          data.GrossPay - total,
	}
}
