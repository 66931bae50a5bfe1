package payslip

import (
	"math"
	"testing"
)

func TestComputeDeductionAmountPercentage(t *testing.T) {
	amount := ComputeDeductionAmount(DeductionKindPercentage, 20, 3000)
	if math.Abs(amount-600) > 1e-9 {
		t.Fatalf("expected 600, got %v", amount)
	}
}

func TestComputeDeductionAmountFixed(t *testing.T) {
	if amount := ComputeDeductionAmount(DeductionKindFixed, 123.45, 3000); amount != 123.45 {
		t.Fatalf("expected 123.45, got %v", amount)
	}
}

func TestComputeDeductionAmountNegativeValue(t *testing.T) {
	if amount := ComputeDeductionAmount(DeductionKindPercentage, -5, 3000); amount != 0 {
		t.Fatalf("expected 0 for negative value, got %v", amount)
	}
}

func TestNewDeductionSnapshotsAmount(t *testing.T) {
	d := NewDeduction(DeductionInput{Name: "Pension", Kind: DeductionKindPercentage, Value: 10}, 2000)
	if d.ID == "" {
		t.Fatal("expected a fresh id")
	}
	if math.Abs(d.Amount-200) > 1e-9 {
		t.Fatalf("expected amount 200, got %v", d.Amount)
	}

	// Gross changing afterwards must not reprice the deduction.
	total := TotalDeductions([]Deduction{d})
	if math.Abs(total-200) > 1e-9 {
		t.Fatalf("expected total 200, got %v", total)
	}
}

func TestTotalDeductionsEmpty(t *testing.T) {
	if total := TotalDeductions(nil); total != 0 {
		t.Fatalf("expected 0 for empty list, got %v", total)
	}
}
