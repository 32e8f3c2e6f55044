package payslip

import "math"

type Breakdown struct {
	BaseSalary       float64
	HouseAmount      float64
	TransportAmount  float64
	GrossSalary      float64
	EmployeeTax      float64
	Pension          float64
	MedicalInsurance float64
	Others           float64
	TotalDeductions  float64
	NetSalary        float64
}

// Percentage returns amount*rate/100 rounded half-up to 2 decimal places.
func Percentage(amount, rate float64) float64 {
	return math.Round(amount*rate) / 100
}

// ComputeAmounts derives the full payslip breakdown from a base salary.
// Allowances and deductions are each computed on the base, not the gross.
func ComputeAmounts(baseSalary float64) Breakdown {
	b := Breakdown{
		BaseSalary:       baseSalary,
		HouseAmount:      Percentage(baseSalary, RateHousing),
		TransportAmount:  Percentage(baseSalary, RateTransport),
		EmployeeTax:      Percentage(baseSalary, RateEmployeeTax),
		Pension:          Percentage(baseSalary, RatePension),
		MedicalInsurance: Percentage(baseSalary, RateMedicalInsurance),
		Others:           Percentage(baseSalary, RateOthers),
	}
	b.GrossSalary = baseSalary + b.HouseAmount + b.TransportAmount
	b.TotalDeductions = b.EmployeeTax + b.Pension + b.MedicalInsurance + b.Others
	b.NetSalary = b.GrossSalary - b.TotalDeductions
	return b
}
