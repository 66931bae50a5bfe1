package payslip

import "github.com/google/uuid"

// ComputeDeductionAmount resolves a deduction rule against a gross-pay base.
// Percentage rules take value as a percent of gross; fixed rules take value
// as the amount itself. Negative rule values resolve to zero.
func ComputeDeductionAmount(kind string, value, grossPay float64) float64 {
	if value < 0 {
		return 0
	}
	switch kind {
	case DeductionKindPercentage:
		return grossPay * value / 100
	case DeductionKindFixed:
		return value
	}
	return 0
}

// NewDeduction builds a deduction from form input. The amount is evaluated
// once against the gross pay in effect now and frozen thereafter; later gross
// changes do not retroactively rewrite it.
func NewDeduction(input DeductionInput, grossPay float64) Deduction {
	return Deduction{
		ID:     uuid.NewString(),
		Name:   input.Name,
		Kind:   input.Kind,
		Value:  input.Value,
		Amount: ComputeDeductionAmount(input.Kind, input.Value, grossPay),
	}
}

// TotalDeductions sums the frozen amounts of the given deductions.
func TotalDeductions(deductions []Deduction) float64 {
	var total float64
	for _, d := range deductions {
		total += d.Amount
	}
	return total
}
