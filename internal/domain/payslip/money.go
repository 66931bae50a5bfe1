package payslip

import "fmt"

// FormatMoney renders an amount as a two-decimal monetary string with the
// given currency symbol, e.g. "£1234.50". Arithmetic elsewhere stays in full
// precision; rounding happens only here at the formatting boundary.
func FormatMoney(symbol string, amount float64) string {
	if amount < 0 {
		return fmt.Sprintf("-%s%.2f", symbol, -amount)
	}
	return fmt.Sprintf("%s%.2f", symbol, amount)
}
