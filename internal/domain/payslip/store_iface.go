package payslip

import "context"

// EmployeeContact is the slice of employee data payslip flows need for
// addressing notifications and documents.
type EmployeeContact struct {
	Code      string
	FirstName string
	LastName  string
	Email     string
}

func (c EmployeeContact) FullName() string {
	return c.FirstName + " " + c.LastName
}

type StoreAPI interface {
	ExistsForPeriod(ctx context.Context, employeeCode string, month, year int) (bool, error)
	// ActiveEmployee resolves an employee that is still enabled. Returns
	// ErrEmployeeNotFound for unknown or disabled employees.
	ActiveEmployee(ctx context.Context, employeeCode string) (EmployeeContact, error)
	// Contact resolves an employee regardless of status, for notifying about
	// slips that predate a disable.
	Contact(ctx context.Context, employeeCode string) (EmployeeContact, error)
	// ActiveBaseSalary returns the base salary of the employee's single
	// active employment, or ErrEmploymentNotFound.
	ActiveBaseSalary(ctx context.Context, employeeCode string) (float64, error)
	// Insert persists a new slip. The unique period constraint is the
	// authority on duplicates; violations surface as ErrAlreadyExists.
	Insert(ctx context.Context, p Payslip) error
	Get(ctx context.Context, id string) (Payslip, error)
	// MarkPaid flips a pending slip to paid. Returns false when the slip was
	// not pending anymore, so concurrent approvals cannot double-fire.
	MarkPaid(ctx context.Context, id string) (bool, error)
	ListByEmployee(ctx context.Context, employeeCode string) ([]Payslip, error)
	ListPending(ctx context.Context, month, year int) ([]Payslip, error)
}
