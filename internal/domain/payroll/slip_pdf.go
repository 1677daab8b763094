package payroll

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// RenderSlipPDF renders a salary slip as a printable A4 document.
func RenderSlipPDF(slip SalarySlip) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, fmt.Sprintf("Salary Slip - %s %d", slip.Month, slip.Year))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Employee: %s", slip.EmployeeName))
	pdf.Ln(7)
	if slip.Position != "" || slip.Department != "" {
		pdf.Cell(0, 8, fmt.Sprintf("%s, %s", slip.Position, slip.Department))
		pdf.Ln(7)
	}
	if slip.PayDate != "" {
		pdf.Cell(0, 8, fmt.Sprintf("Pay date: %s", slip.PayDate))
		pdf.Ln(7)
	}
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	slipLine(pdf, "Basic Salary", slip.BasicSalary)
	slipLine(pdf, "HRA", slip.HRA)
	slipLine(pdf, "Transport Allowance", slip.TransportAllowance)
	slipLine(pdf, "Medical Allowance", slip.MedicalAllowance)
	slipLine(pdf, "Other Allowances", slip.OtherAllowances)
	pdf.SetFont("Helvetica", "B", 12)
	slipLine(pdf, "Gross Salary", slip.GrossSalary)
	pdf.Ln(3)

	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 12)
	slipLine(pdf, "Provident Fund", slip.ProvidentFund)
	slipLine(pdf, "Tax", slip.Tax)
	slipLine(pdf, "Other Deductions", slip.OtherDeductions)
	pdf.SetFont("Helvetica", "B", 12)
	slipLine(pdf, "Total Deductions", slip.TotalDeductions)
	pdf.Ln(3)

	pdf.SetFont("Helvetica", "B", 14)
	slipLine(pdf, "Net Salary", slip.NetSalary)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func slipLine(pdf *gofpdf.Fpdf, label string, amount float64) {
	pdf.Cell(100, 7, label)
	pdf.CellFormat(0, 7, fmt.Sprintf("%.2f", amount), "", 0, "R", false, 0, "")
	pdf.Ln(7)
}
