package payslip

// ContributionSet holds the historical records a user has selected to count
// toward year-to-date totals. The set lives only for the editing session
// that built it; nothing here is persisted.
type ContributionSet struct {
	contributions []Contribution
}

// NewContributionSet returns an empty selection set.
func NewContributionSet() *ContributionSet {
	return &ContributionSet{}
}

// Add derives a contribution from a saved record and appends it. Adding a
// record whose id is already present is a soft failure: the set is left
// unchanged and ErrDuplicateContribution lets the caller surface an
// "already added" notice.
func (s *ContributionSet) Add(record Record) error {
	for _, c := range s.contributions {
		if c.RecordID == record.ID {
			return ErrDuplicateContribution
		}
	}
	s.contributions = append(s.contributions, Contribution{
		RecordID:       record.ID,
		PayPeriodStart: record.PayPeriodStart,
		PayPeriodEnd:   record.PayPeriodEnd,
		Figures: Figures{
			GrossPay:        record.GrossSalary,
			TotalDeductions: record.TotalDeductions,
			NetPay:          record.NetSalary,
		},
	})
	return nil
}

// Remove drops the contribution for id. Removing an absent id is a no-op.
func (s *ContributionSet) Remove(id string) {
	for i, c := range s.contributions {
		if c.RecordID == id {
			s.contributions = append(s.contributions[:i], s.contributions[i+1:]...)
			return
		}
	}
}

// Clear empties the set unconditionally.
func (s *ContributionSet) Clear() {
	s.contributions = nil
}

// Contributions returns a copy of the current selection.
func (s *ContributionSet) Contributions() []Contribution {
	out := make([]Contribution, len(s.contributions))
	copy(out, s.contributions)
	return out
}

func (s *ContributionSet) Len() int {
	return len(s.contributions)
}

// Totals folds the current selection into a figures triple. It is a fresh
// fold on every call rather than an incremental cache.
func (s *ContributionSet) Totals() Figures {
	var totals Figures
	for _, c := range s.contributions {
		totals.GrossPay += c.Figures.GrossPay
		totals.TotalDeductions += c.Figures.TotalDeductions
		totals.NetPay += c.Figures.NetPay
	}
	return totals
}

// AutomaticYTD is the crude month-of-year model: the current period's figure
// multiplied by the 1-based month taken from the YYYY-MM period key. Weekly
// and quarterly periods use the same month multiplier.
func AutomaticYTD(current Figures, periodKey string) Figures {
	n := float64(PeriodNumber(periodKey))
	return Figures{
		GrossPay:        current.GrossPay * n,
		TotalDeductions: current.TotalDeductions * n,
		NetPay:          current.NetPay * n,
	}
}

// ComputeYTD combines the three year-to-date sources: the automatic figure
// (or the manual override when present) plus the sum of selected historical
// contributions. The override replaces only the current-period term;
// historical contributions are always added on top.
func ComputeYTD(current Figures, periodKey string, override *Figures, set *ContributionSet) Figures {
	base := AutomaticYTD(current, periodKey)
	if override != nil {
		base = *override
	}
	var history Figures
	if set != nil {
		history = set.Totals()
	}
	return Figures{
		GrossPay:        base.GrossPay + history.GrossPay,
		TotalDeductions: base.TotalDeductions + history.TotalDeductions,
		NetPay:          base.NetPay + history.NetPay,
	}
}

// SeedOverride returns the starting value for a manual override: the current
// period's own computed figures, so the user edits from a sensible baseline
// instead of zero.
func SeedOverride(current Figures) *Figures {
	seeded := current
	return &seeded
}
