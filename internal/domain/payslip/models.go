package payslip

import "time"

type Payslip struct {
	ID               string    `json:"id"`
	EmployeeCode     string    `json:"employeeCode"`
	EmployeeName     string    `json:"employeeName"`
	BaseSalary       float64   `json:"baseSalary"`
	HouseAmount      float64   `json:"houseAmount"`
	TransportAmount  float64   `json:"transportAmount"`
	GrossSalary      float64   `json:"grossSalary"`
	EmployeeTax      float64   `json:"employeeTaxedAmount"`
	Pension          float64   `json:"pensionAmount"`
	MedicalInsurance float64   `json:"medicalInsuranceAmount"`
	Others           float64   `json:"otherTaxedAmount"`
	TotalDeductions  float64   `json:"totalDeductions"`
	NetSalary        float64   `json:"netSalary"`
	Month            int       `json:"month"`
	Year             int       `json:"year"`
	Status           string    `json:"status"`
	CreatedAt        time.Time `json:"createdAt"`
}

// PeriodName renders the slip's month as an uppercase English month name.
func (p Payslip) PeriodName() string {
	return monthName(p.Month)
}
