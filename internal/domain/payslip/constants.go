package payslip

const (
	StatusPending = "PENDING"
	StatusPaid    = "PAID"
)

// Fixed payroll rates in percent of base salary. The deduction catalog is
// maintained separately and does not feed these (see DESIGN.md).
const (
	RateHousing          = 14.0
	RateTransport        = 14.0
	RateEmployeeTax      = 30.0
	RatePension          = 6.0
	RateMedicalInsurance = 5.0
	RateOthers           = 5.0
)
