package payslip

import (
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"
)

// namePattern is deliberately conservative: letters, digits, spaces, hyphens,
// apostrophes and periods only. This rejects most non-Latin names, a known
// limitation carried for parity with the rendered document templates.
var namePattern = regexp.MustCompile(`^[A-Za-z0-9 .'-]+$`)

// Validate checks a draft against every structural rule and returns a
// ValidationError carrying all violations, or nil when the draft is clean.
// It must pass before a draft may reach the save path.
func Validate(data *Data, now time.Time) error {
	verr := &ValidationError{}

	checkName(verr, "companyName", data.CompanyName)
	checkName(verr, "employeeName", data.EmployeeName)
	checkPeriod(verr, data.PayPeriodStart, data.PayPeriodEnd, now)
	checkEntries(verr, data.PaymentEntries)
	checkDeductions(verr, data.Deductions)

	if len(verr.Issues) == 0 {
		return nil
	}
	return verr.sorted()
}

func checkName(verr *ValidationError, field, value string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		verr.add(field, "must not be empty")
		return
	}
	if !namePattern.MatchString(trimmed) {
		verr.add(field, "may only contain letters, digits, spaces, hyphens, apostrophes and periods")
	}
}

func checkPeriod(verr *ValidationError, start, end, now time.Time) {
	if start.IsZero() {
		verr.add("payPeriodStart", "must be set")
	}
	if end.IsZero() {
		verr.add("payPeriodEnd", "must be set")
	}
	if start.IsZero() || end.IsZero() {
		return
	}
	if !start.Before(end) {
		verr.add("payPeriodStart", "must be before payPeriodEnd")
	}
	if outsideYear(start, now) {
		verr.add("payPeriodStart", "must be within one year of today")
	}
	if outsideYear(end, now) {
		verr.add("payPeriodEnd", "must be within one year of today")
	}
}

func checkEntries(verr *ValidationError, entries []PaymentEntry) {
	if len(entries) == 0 {
		verr.add("paymentEntries", "at least one payment entry is required")
		return
	}
	hasPositive := false
	for _, entry := range entries {
		if EntryAmount(entry) > 0 {
			hasPositive = true
			break
		}
	}
	if !hasPositive {
		verr.add("paymentEntries", "at least one payment entry must have an amount greater than zero")
	}
}

func checkDeductions(verr *ValidationError, deductions []Deduction) {
	for i, d := range deductions {
		field := fmt.Sprintf("deductions[%d]", i)
		name := strings.TrimSpace(d.Name)
		if name == "" {
			verr.add(field, "name must not be empty")
		} else if len(name) > MaxDeductionNameLen {
			verr.add(field, fmt.Sprintf("name must be at most %d characters", MaxDeductionNameLen))
		}
		if math.IsNaN(d.Amount) || math.IsInf(d.Amount, 0) {
			verr.add(field, "amount must be a finite number")
			continue
		}
		if d.Amount < 0 {
			verr.add(field, "amount must not be negative")
		}
		if d.Amount > MaxDeductionAmount {
			verr.add(field, fmt.Sprintf("amount must not exceed %.2f", MaxDeductionAmount))
		}
	}
}

func outsideYear(date, now time.Time) bool {
	return date.Before(now.AddDate(-1, 0, 0)) || date.After(now.AddDate(1, 0, 0))
}
