package employee

import "context"

type StoreAPI interface {
	Count(ctx context.Context) (int, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	Create(ctx context.Context, emp Employee, passwordHash string) error
	GetActiveByCode(ctx context.Context, code string) (Employee, error)
	GetByEmail(ctx context.Context, email string) (Employee, string, error)
	List(ctx context.Context, limit, offset int) ([]Employee, error)
	Update(ctx context.Context, code string, params UpdateParams) error
	Disable(ctx context.Context, code string) (bool, error)
}
