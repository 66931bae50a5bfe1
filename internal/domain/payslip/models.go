package payslip

import "time"

// PaymentEntry is one line item contributing to gross pay. Quantity and Rate
// are set for hourly/overtime entries; for those, Amount is derived as
// quantity times rate whenever both are present.
type PaymentEntry struct {
	ID          string   `json:"id"`
	Description string   `json:"description"`
	Kind        string   `json:"kind"`
	Quantity    *float64 `json:"quantity,omitempty"`
	Rate        *float64 `json:"rate,omitempty"`
	Amount      float64  `json:"amount"`
}

// Deduction is one line item subtracted from gross pay. Amount is computed
// once at creation from the gross pay in effect at that moment and is not
// recalculated if gross pay later changes.
type Deduction struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Kind   string  `json:"kind"`
	Value  float64 `json:"value"`
	Amount float64 `json:"amount"`
}

// DeductionInput is the form payload for creating a deduction.
type DeductionInput struct {
	Name  string  `json:"name"`
	Kind  string  `json:"kind"`
	Value float64 `json:"value"`
}

// Data is the working aggregate for one payslip being authored.
type Data struct {
	EmployeeName   string         `json:"employeeName"`
	PayrollNumber  string         `json:"payrollNumber"`
	CompanyName    string         `json:"companyName"`
	PayPeriodStart time.Time      `json:"payPeriodStart"`
	PayPeriodEnd   time.Time      `json:"payPeriodEnd"`
	Period         string         `json:"period"`
	PaymentEntries []PaymentEntry `json:"paymentEntries"`
	GrossPay       float64        `json:"grossPay"`
	Deductions     []Deduction    `json:"deductions"`
	YTDOverride    *Figures       `json:"ytdOverride,omitempty"`
}

// Record is a persisted payslip. Records are immutable once finalized;
// editing loads a record back into a fresh Data draft.
type Record struct {
	ID              string            `json:"id"`
	OwnerID         string            `json:"owner_id"`
	ChildProfileID  string            `json:"child_profile_id,omitempty"`
	EmployeeName    string            `json:"employee_name"`
	CompanyName     string            `json:"company_name"`
	PayrollNumber   string            `json:"payroll_number"`
	PayPeriodStart  time.Time         `json:"pay_period_start"`
	PayPeriodEnd    time.Time         `json:"pay_period_end"`
	Period          string            `json:"period"`
	GrossSalary     float64           `json:"gross_salary"`
	TotalDeductions float64           `json:"total_deductions"`
	NetSalary       float64           `json:"net_salary"`
	Currency        string            `json:"currency"`
	PaymentEntries  []PaymentEntry    `json:"payment_entries"`
	Deductions      []DeductionRecord `json:"deductions"`
	CreatedAt       time.Time         `json:"created_at"`
}

// DeductionRecord is the finalized deduction line carried on a Record.
type DeductionRecord struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
}

// RecordPatch updates mutable presentation fields on a saved record.
type RecordPatch struct {
	EmployeeName  *string `json:"employeeName,omitempty"`
	CompanyName   *string `json:"companyName,omitempty"`
	PayrollNumber *string `json:"payrollNumber,omitempty"`
	Currency      *string `json:"currency,omitempty"`
}

// Figures is a gross/deductions/net triple, used for the current period and
// for year-to-date totals.
type Figures struct {
	GrossPay        float64 `json:"grossPay"`
	TotalDeductions float64 `json:"totalDeductions"`
	NetPay          float64 `json:"netPay"`
}

// Contribution is a historical record the user has selected to count toward
// year-to-date totals. The selection set is session-local and never persisted.
type Contribution struct {
	RecordID       string    `json:"recordId"`
	PayPeriodStart time.Time `json:"payPeriodStart"`
	PayPeriodEnd   time.Time `json:"payPeriodEnd"`
	Figures        Figures   `json:"figures"`
}
