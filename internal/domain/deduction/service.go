package deduction

import (
	"context"

	"github.com/google/uuid"

	"epms/internal/domain/identity"
)

// The deduction catalog is maintained independently of the payslip
// computation, which runs on fixed rates. The duplication is deliberate
// until product intent says the catalog should drive the calculator.
type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) Create(ctx context.Context, caller identity.Principal, name string, percentage float64) (Deduction, error) {
	if !caller.HasAnyRole(identity.RoleAdmin, identity.RoleManager) {
		return Deduction{}, identity.ErrPermissionDenied
	}

	ded := Deduction{Code: uuid.NewString(), DeductionName: name, Percentage: percentage}
	if err := s.store.Create(ctx, ded); err != nil {
		return Deduction{}, err
	}
	return ded, nil
}

func (s *Service) Get(ctx context.Context, caller identity.Principal, code string) (Deduction, error) {
	if !caller.HasAnyRole(identity.RoleAdmin, identity.RoleManager) {
		return Deduction{}, identity.ErrPermissionDenied
	}
	return s.store.GetByCode(ctx, code)
}

func (s *Service) List(ctx context.Context, caller identity.Principal) ([]Deduction, error) {
	if !caller.HasAnyRole(identity.RoleAdmin, identity.RoleManager) {
		return nil, identity.ErrPermissionDenied
	}
	return s.store.List(ctx)
}

// ListForEmployee returns the full catalog; rates are not assigned
// per-employee. Employees may read it for their own code.
func (s *Service) ListForEmployee(ctx context.Context, caller identity.Principal, employeeCode string) ([]Deduction, error) {
	if !caller.CanManageEmployee(employeeCode) {
		return nil, identity.ErrPermissionDenied
	}
	return s.store.List(ctx)
}

func (s *Service) Update(ctx context.Context, caller identity.Principal, code, name string, percentage float64) (Deduction, error) {
	if !caller.HasAnyRole(identity.RoleAdmin, identity.RoleManager) {
		return Deduction{}, identity.ErrPermissionDenied
	}

	ded := Deduction{Code: code, DeductionName: name, Percentage: percentage}
	if err := s.store.Update(ctx, ded); err != nil {
		return Deduction{}, err
	}
	return ded, nil
}

func (s *Service) Delete(ctx context.Context, caller identity.Principal, code string) error {
	if !caller.HasRole(identity.RoleAdmin) {
		return identity.ErrPermissionDenied
	}

	deleted, err := s.store.Delete(ctx, code)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrNotFound
	}
	return nil
}
