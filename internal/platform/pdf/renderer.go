package pdf

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"

	"epms/internal/domain/payslip"
)

// Renderer produces the downloadable payslip document.
type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

func (Renderer) Render(p payslip.Payslip) ([]byte, error) {
	doc := gofpdf.New("P", "mm", "A4", "")
	doc.AddPage()

	doc.SetFont("Helvetica", "B", 16)
	doc.Cell(0, 10, "PAYSLIP")
	doc.Ln(12)

	doc.SetFont("Helvetica", "", 12)
	doc.Cell(0, 8, fmt.Sprintf("Employee: %s", p.EmployeeName))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Employee Code: %s", p.EmployeeCode))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Period: %s %d", p.PeriodName(), p.Year))
	doc.Ln(7)
	doc.Cell(0, 8, fmt.Sprintf("Status: %s", p.Status))
	doc.Ln(12)

	doc.SetFont("Helvetica", "B", 13)
	doc.Cell(0, 8, "EARNINGS")
	doc.Ln(9)
	doc.SetFont("Helvetica", "", 12)
	amountLine(doc, "Base Salary", p.BaseSalary)
	amountLine(doc, "Housing Allowance", p.HouseAmount)
	amountLine(doc, "Transport Allowance", p.TransportAmount)
	amountLine(doc, "Gross Salary", p.GrossSalary)
	doc.Ln(5)

	doc.SetFont("Helvetica", "B", 13)
	doc.Cell(0, 8, "DEDUCTIONS")
	doc.Ln(9)
	doc.SetFont("Helvetica", "", 12)
	amountLine(doc, "Employee Tax", p.EmployeeTax)
	amountLine(doc, "Pension", p.Pension)
	amountLine(doc, "Medical Insurance", p.MedicalInsurance)
	amountLine(doc, "Others", p.Others)
	amountLine(doc, "Total Deductions", p.TotalDeductions)
	doc.Ln(5)

	doc.SetFont("Helvetica", "B", 13)
	amountLine(doc, "NET SALARY", p.NetSalary)

	var buf bytes.Buffer
	if err := doc.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func amountLine(doc *gofpdf.Fpdf, label string, amount float64) {
	doc.Cell(100, 8, label)
	doc.CellFormat(0, 8, payslip.FormatRWF(amount), "", 0, "R", false, 0, "")
	doc.Ln(7)
}
