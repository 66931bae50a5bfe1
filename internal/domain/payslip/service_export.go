package payslip

import (
	"bytes"
	"context"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// GeneratePDF renders a saved payslip as a downloadable PDF. The year-to-date
// block on an exported record uses the automatic model over the record's own
// figures; session-local override and contribution state is a preview-time
// concern and never reaches the export path.
func (s *Service) GeneratePDF(ctx context.Context, ownerID, recordID, currencySymbol string) ([]byte, error) {
	record, err := s.store.GetRecord(ctx, ownerID, recordID)
	if err != nil {
		return nil, err
	}
	if currencySymbol == "" {
		currencySymbol = record.Currency
	}

	figures := Figures{
		GrossPay:        record.GrossSalary,
		TotalDeductions: record.TotalDeductions,
		NetPay:          record.NetSalary,
	}
	ytd := AutomaticYTD(figures, record.Period)

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Company: %s", record.CompanyName))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", record.EmployeeName))
	pdf.Ln(7)
	if record.PayrollNumber != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Payroll number: %s", record.PayrollNumber))
		pdf.Ln(7)
	}
	pdf.Cell(0, 8, fmt.Sprintf("Period: %s to %s",
		record.PayPeriodStart.Format("2006-01-02"), record.PayPeriodEnd.Format("2006-01-02")))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Payments")
	pdf.Ln(7)
	pdf.SetFont("Helvetica", "", 11)
	for _, entry := range record.PaymentEntries {
		label := entry.Description
		if label == "" {
			label = entry.Kind
		}
		pdf.Cell(120, 7, label)
		pdf.Cell(0, 7, FormatMoney(currencySymbol, EntryAmount(entry)))
		pdf.Ln(6)
	}
	pdf.Ln(3)

	if len(record.Deductions) > 0 {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, "Deductions")
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		for _, d := range record.Deductions {
			pdf.Cell(120, 7, d.Name)
			pdf.Cell(0, 7, FormatMoney(currencySymbol, d.Amount))
			pdf.Ln(6)
		}
		pdf.Ln(3)
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Gross pay: %s", FormatMoney(currencySymbol, record.GrossSalary)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Total deductions: %s", FormatMoney(currencySymbol, record.TotalDeductions)))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Net pay: %s", FormatMoney(currencySymbol, record.NetSalary)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("YTD gross: %s", FormatMoney(currencySymbol, ytd.GrossPay)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("YTD deductions: %s", FormatMoney(currencySymbol, ytd.TotalDeductions)))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("YTD net: %s", FormatMoney(currencySymbol, ytd.NetPay)))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
