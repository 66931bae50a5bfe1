package payslip

import (
	"math"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validDraft() *Data {
	return &Data{
		EmployeeName:   "Jane O'Neill",
		CompanyName:    "Acme Ltd.",
		PayPeriodStart: date(2025, time.June, 1),
		PayPeriodEnd:   date(2025, time.June, 30),
		PaymentEntries: []PaymentEntry{{Kind: EntryKindFixed, Amount: 3000}},
		Deductions:     []Deduction{{Name: "Tax", Kind: DeductionKindFixed, Value: 600, Amount: 600}},
	}
}

func validationNow() time.Time {
	return date(2025, time.June, 15)
}

func TestValidateCleanDraft(t *testing.T) {
	require.NoError(t, Validate(validDraft(), validationNow()))
}

func TestValidateInvertedDateRange(t *testing.T) {
	data := validDraft()
	data.PayPeriodStart = date(2025, time.June, 10)
	data.PayPeriodEnd = date(2025, time.June, 1)

	err := Validate(data, validationNow())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Issues, 1)
	require.Equal(t, "payPeriodStart", verr.Issues[0].Field)
}

func TestValidatePeriodOutsideOneYear(t *testing.T) {
	data := validDraft()
	data.PayPeriodStart = date(2023, time.June, 1)
	data.PayPeriodEnd = date(2023, time.June, 30)

	err := Validate(data, validationNow())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Issues, 2)
}

func TestValidateDisallowedNameCharacters(t *testing.T) {
	data := validDraft()
	data.EmployeeName = "Jane <script>"

	err := Validate(data, validationNow())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "employeeName", verr.Issues[0].Field)
}

func TestValidateRequiresPositiveEntry(t *testing.T) {
	data := validDraft()
	data.PaymentEntries = []PaymentEntry{{Kind: EntryKindFixed, Amount: 0}}

	err := Validate(data, validationNow())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Equal(t, "paymentEntries", verr.Issues[0].Field)
}

func TestValidateDeductionRules(t *testing.T) {
	data := validDraft()
	data.Deductions = []Deduction{
		{Name: "", Amount: 10},
		{Name: strings.Repeat("x", 51), Amount: 10},
		{Name: "Huge", Amount: MaxDeductionAmount + 1},
		{Name: "Negative", Amount: -5},
		{Name: "NaN", Amount: math.NaN()},
	}

	err := Validate(data, validationNow())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Issues, 5)
}

func TestValidateCollectsAllViolations(t *testing.T) {
	data := &Data{
		PayPeriodStart: date(2025, time.June, 10),
		PayPeriodEnd:   date(2025, time.June, 1),
	}

	err := Validate(data, validationNow())
	var verr *ValidationError
	require.ErrorAs(t, err, &verr)

	fields := make(map[string]bool)
	for _, issue := range verr.Issues {
		fields[issue.Field] = true
	}
	require.True(t, fields["companyName"])
	require.True(t, fields["employeeName"])
	require.True(t, fields["payPeriodStart"])
	require.True(t, fields["paymentEntries"])
}
