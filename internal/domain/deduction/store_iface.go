package deduction

import "context"

type StoreAPI interface {
	Create(ctx context.Context, ded Deduction) error
	GetByCode(ctx context.Context, code string) (Deduction, error)
	List(ctx context.Context) ([]Deduction, error)
	Update(ctx context.Context, ded Deduction) error
	Delete(ctx context.Context, code string) (bool, error)
}
