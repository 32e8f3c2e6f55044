package employee

import (
	"context"

	"epms/internal/auth"
	"epms/internal/domain/identity"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

func (s *Service) List(ctx context.Context, caller identity.Principal, limit, offset int) ([]Employee, error) {
	if !caller.HasAnyRole(identity.RoleAdmin, identity.RoleManager) {
		return nil, identity.ErrPermissionDenied
	}
	if limit <= 0 {
		limit = 50
	}
	if offset < 0 {
		offset = 0
	}
	return s.store.List(ctx, limit, offset)
}

func (s *Service) GetByCode(ctx context.Context, caller identity.Principal, code string) (Employee, error) {
	if !caller.CanManageEmployee(code) {
		return Employee{}, identity.ErrPermissionDenied
	}
	return s.store.GetActiveByCode(ctx, code)
}

func (s *Service) Update(ctx context.Context, caller identity.Principal, code string, params UpdateParams, password string) (Employee, error) {
	if !caller.CanManageEmployee(code) {
		return Employee{}, identity.ErrPermissionDenied
	}

	if _, err := s.store.GetActiveByCode(ctx, code); err != nil {
		return Employee{}, err
	}

	if password != "" {
		hash, err := auth.HashPassword(password)
		if err != nil {
			return Employee{}, err
		}
		params.PasswordHash = hash
	}

	if err := s.store.Update(ctx, code, params); err != nil {
		return Employee{}, err
	}
	return s.store.GetActiveByCode(ctx, code)
}

// Delete soft-disables the employee; the row is kept and excluded from
// active-only lookups.
func (s *Service) Delete(ctx context.Context, caller identity.Principal, code string) error {
	if !caller.HasRole(identity.RoleAdmin) {
		return identity.ErrPermissionDenied
	}

	disabled, err := s.store.Disable(ctx, code)
	if err != nil {
		return err
	}
	if !disabled {
		return ErrNotFound
	}
	return nil
}
