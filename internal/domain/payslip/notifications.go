package payslip

import (
	"fmt"
	"time"
)

const (
	subjectGenerated = "Payslip Generated"
	subjectApproved  = "Payslip Approved and Paid"
)

func generationMessage(fullName string, p Payslip) string {
	return fmt.Sprintf(
		"Dear %s, your salary for %s/%d has been processed.\n"+
			"Gross Salary: %s\n"+
			"Total Deductions: %s\n"+
			"Net Salary: %s\n"+
			"Status: PENDING",
		fullName, p.PeriodName(), p.Year,
		FormatRWF(p.GrossSalary), FormatRWF(p.TotalDeductions), FormatRWF(p.NetSalary))
}

func approvalMessage(p Payslip, paidAt time.Time) string {
	return fmt.Sprintf(
		"Your payslip for %s %d has been approved and paid.\n"+
			"Gross Salary: %s\n"+
			"Total Allowances: %s\n"+
			"Total Deductions: %s\n"+
			"Net Salary: %s\n"+
			"Payment Date: %s",
		p.PeriodName(), p.Year,
		FormatRWF(p.GrossSalary),
		FormatRWF(p.HouseAmount+p.TransportAmount),
		FormatRWF(p.TotalDeductions),
		FormatRWF(p.NetSalary),
		paidAt.Format("02/01/2006 15:04"))
}

func approvalEmailSubject(p Payslip) string {
	return fmt.Sprintf("Salary Payment Notification - %s %d", p.PeriodName(), p.Year)
}

func approvalEmailBody(fullName string, p Payslip) string {
	return fmt.Sprintf(
		"Dear %s,\n\n"+
			"Your salary for %s/%d from Rwanda Government amounting to %s "+
			"has been credited to your account %s successfully.\n\n"+
			"Payment Details:\n"+
			"Gross Salary: %s\n"+
			"Total Deductions: %s\n"+
			"Net Salary: %s\n\n"+
			"Best regards,\nPayroll Management System",
		fullName, p.PeriodName(), p.Year,
		FormatRWF(p.NetSalary), p.EmployeeCode,
		FormatRWF(p.GrossSalary), FormatRWF(p.TotalDeductions), FormatRWF(p.NetSalary))
}
