package employment

import "context"

type StoreAPI interface {
	EmployeeName(ctx context.Context, employeeCode string) (string, error)
	HasActive(ctx context.Context, employeeCode string) (bool, error)
	Create(ctx context.Context, emp Employment) error
	Update(ctx context.Context, code string, params UpdateParams) (bool, error)
	GetByCode(ctx context.Context, code string) (Employment, error)
	ListActive(ctx context.Context) ([]Employment, error)
	ActiveByEmployee(ctx context.Context, employeeCode string) (Employment, error)
}
