package employment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"epms/internal/domain/identity"
)

type Service struct {
	store StoreAPI
}

func NewService(store StoreAPI) *Service {
	return &Service{store: store}
}

type CreateParams struct {
	EmployeeCode string
	BaseSalary   float64
	Position     string
	Department   string
}

// Create records a new ACTIVE employment. The partial unique index on
// (employee_code) WHERE status = 'ACTIVE' is the authoritative one-active
// guard; the HasActive check only gives a friendlier fast-path rejection.
func (s *Service) Create(ctx context.Context, caller identity.Principal, params CreateParams) (Employment, error) {
	if !caller.HasRole(identity.RoleManager) {
		return Employment{}, identity.ErrPermissionDenied
	}

	name, err := s.store.EmployeeName(ctx, params.EmployeeCode)
	if err != nil {
		return Employment{}, err
	}

	active, err := s.store.HasActive(ctx, params.EmployeeCode)
	if err != nil {
		return Employment{}, err
	}
	if active {
		return Employment{}, ErrActiveExists
	}

	emp := Employment{
		Code:         uuid.NewString(),
		EmployeeCode: params.EmployeeCode,
		EmployeeName: name,
		BaseSalary:   params.BaseSalary,
		Position:     params.Position,
		Department:   params.Department,
		Status:       StatusActive,
		JoiningDate:  time.Now().UTC(),
	}
	if err := s.store.Create(ctx, emp); err != nil {
		return Employment{}, err
	}
	return emp, nil
}

func (s *Service) Update(ctx context.Context, caller identity.Principal, code string, params UpdateParams) (Employment, error) {
	if !caller.HasRole(identity.RoleManager) {
		return Employment{}, identity.ErrPermissionDenied
	}

	updated, err := s.store.Update(ctx, code, params)
	if err != nil {
		return Employment{}, err
	}
	if !updated {
		return Employment{}, ErrNotFound
	}
	return s.store.GetByCode(ctx, code)
}

func (s *Service) Get(ctx context.Context, caller identity.Principal, code string) (Employment, error) {
	if !caller.HasAnyRole(identity.RoleManager, identity.RoleAdmin) {
		return Employment{}, identity.ErrPermissionDenied
	}
	return s.store.GetByCode(ctx, code)
}

func (s *Service) ListActive(ctx context.Context, caller identity.Principal) ([]Employment, error) {
	if !caller.HasAnyRole(identity.RoleManager, identity.RoleAdmin) {
		return nil, identity.ErrPermissionDenied
	}
	return s.store.ListActive(ctx)
}

func (s *Service) ActiveByEmployee(ctx context.Context, caller identity.Principal, employeeCode string) (Employment, error) {
	if !caller.HasAnyRole(identity.RoleManager, identity.RoleAdmin) && !caller.IsCurrentUser(employeeCode) {
		return Employment{}, identity.ErrPermissionDenied
	}
	return s.store.ActiveByEmployee(ctx, employeeCode)
}
