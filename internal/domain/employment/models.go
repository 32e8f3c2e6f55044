package employment

import "time"

type Employment struct {
	Code         string    `json:"code"`
	EmployeeCode string    `json:"employeeCode"`
	EmployeeName string    `json:"employeeName,omitempty"`
	BaseSalary   float64   `json:"baseSalary"`
	Position     string    `json:"position"`
	Department   string    `json:"department"`
	Status       string    `json:"status"`
	JoiningDate  time.Time `json:"joiningDate"`
}

type UpdateParams struct {
	BaseSalary float64
	Position   string
	Department string
	Status     string
}
