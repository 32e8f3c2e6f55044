package employee

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"epms/internal/domain/identity"
)

type fakeStore struct {
	employees map[string]Employee
	hashes    map[string]string
}

func newFakeStore(emps ...Employee) *fakeStore {
	f := &fakeStore{employees: map[string]Employee{}, hashes: map[string]string{}}
	for _, emp := range emps {
		f.employees[emp.Code] = emp
	}
	return f
}

func (f *fakeStore) Count(ctx context.Context) (int, error) {
	return len(f.employees), nil
}

func (f *fakeStore) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	for _, emp := range f.employees {
		if emp.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStore) Create(ctx context.Context, emp Employee, passwordHash string) error {
	if exists, _ := f.ExistsByEmail(ctx, emp.Email); exists {
		return ErrEmailTaken
	}
	f.employees[emp.Code] = emp
	f.hashes[emp.Code] = passwordHash
	return nil
}

func (f *fakeStore) GetActiveByCode(ctx context.Context, code string) (Employee, error) {
	emp, ok := f.employees[code]
	if !ok || emp.Status != StatusActive {
		return Employee{}, ErrNotFound
	}
	return emp, nil
}

func (f *fakeStore) GetByEmail(ctx context.Context, email string) (Employee, string, error) {
	for code, emp := range f.employees {
		if emp.Email == email {
			return emp, f.hashes[code], nil
		}
	}
	return Employee{}, "", ErrNotFound
}

func (f *fakeStore) List(ctx context.Context, limit, offset int) ([]Employee, error) {
	out := make([]Employee, 0, len(f.employees))
	for _, emp := range f.employees {
		out = append(out, emp)
	}
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStore) Update(ctx context.Context, code string, params UpdateParams) error {
	emp, ok := f.employees[code]
	if !ok {
		return ErrNotFound
	}
	emp.FirstName = params.FirstName
	emp.LastName = params.LastName
	emp.Mobile = params.Mobile
	emp.DateOfBirth = params.DateOfBirth
	if params.PasswordHash != "" {
		f.hashes[code] = params.PasswordHash
	}
	f.employees[code] = emp
	return nil
}

func (f *fakeStore) Disable(ctx context.Context, code string) (bool, error) {
	emp, ok := f.employees[code]
	if !ok || emp.Status != StatusActive {
		return false, nil
	}
	emp.Status = StatusDisabled
	f.employees[code] = emp
	return true, nil
}

var (
	admin   = identity.Principal{EmployeeCode: "ADM1", Email: "admin@example.com", Roles: []string{"ROLE_ADMIN"}}
	manager = identity.Principal{EmployeeCode: "MGR1", Email: "manager@example.com", Roles: []string{"ROLE_MANAGER"}}
	worker  = identity.Principal{EmployeeCode: "EMP1", Email: "worker@example.com", Roles: []string{"ROLE_EMPLOYEE"}}
)

func activeEmployee(code, email string) Employee {
	return Employee{Code: code, FirstName: "Jane", LastName: "Doe", Email: email, Status: StatusActive}
}

func TestGetByCodeOwnership(t *testing.T) {
	store := newFakeStore(activeEmployee("EMP1", "worker@example.com"), activeEmployee("EMP2", "other@example.com"))
	svc := NewService(store)

	_, err := svc.GetByCode(context.Background(), worker, "EMP1")
	require.NoError(t, err, "employee must read their own record")

	_, err = svc.GetByCode(context.Background(), worker, "EMP2")
	require.ErrorIs(t, err, identity.ErrPermissionDenied)

	_, err = svc.GetByCode(context.Background(), manager, "EMP2")
	require.NoError(t, err, "manager must read any record")
}

func TestListRequiresManagerOrAdmin(t *testing.T) {
	svc := NewService(newFakeStore(activeEmployee("EMP1", "worker@example.com")))

	_, err := svc.List(context.Background(), worker, 50, 0)
	require.ErrorIs(t, err, identity.ErrPermissionDenied)

	list, err := svc.List(context.Background(), admin, 50, 0)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestDeleteSoftDisables(t *testing.T) {
	store := newFakeStore(activeEmployee("EMP1", "worker@example.com"))
	svc := NewService(store)

	require.NoError(t, svc.Delete(context.Background(), admin, "EMP1"))

	// Row persists, but active-only lookup must miss it.
	_, err := svc.GetByCode(context.Background(), admin, "EMP1")
	require.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, StatusDisabled, store.employees["EMP1"].Status)

	// A second delete targets an already-disabled row.
	err = svc.Delete(context.Background(), admin, "EMP1")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestDeleteRequiresAdmin(t *testing.T) {
	svc := NewService(newFakeStore(activeEmployee("EMP1", "worker@example.com")))

	err := svc.Delete(context.Background(), manager, "EMP1")
	require.ErrorIs(t, err, identity.ErrPermissionDenied)
}

func TestUpdateRehashesPassword(t *testing.T) {
	store := newFakeStore(activeEmployee("EMP1", "worker@example.com"))
	svc := NewService(store)

	updated, err := svc.Update(context.Background(), worker, "EMP1", UpdateParams{FirstName: "Janet", LastName: "Doe"}, "NewSecret1")
	require.NoError(t, err)
	assert.Equal(t, "Janet", updated.FirstName)
	assert.NotEmpty(t, store.hashes["EMP1"], "password change must store a new hash")
	assert.NotEqual(t, "NewSecret1", store.hashes["EMP1"], "password must never be stored in the clear")
}

func TestUpdateUnknownEmployee(t *testing.T) {
	svc := NewService(newFakeStore())

	_, err := svc.Update(context.Background(), admin, "MISSING", UpdateParams{}, "")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNotFound))
}
