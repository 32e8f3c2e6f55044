package account

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"epms/internal/auth"
	"epms/internal/domain/employee"
	"epms/internal/domain/identity"
)

type fakeEmployeeStore struct {
	byEmail map[string]employee.Employee
	hashes  map[string]string
}

func newFakeEmployeeStore() *fakeEmployeeStore {
	return &fakeEmployeeStore{
		byEmail: make(map[string]employee.Employee),
		hashes:  make(map[string]string),
	}
}

func (f *fakeEmployeeStore) Count(context.Context) (int, error) { return len(f.byEmail), nil }

func (f *fakeEmployeeStore) ExistsByEmail(_ context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeEmployeeStore) Create(_ context.Context, emp employee.Employee, passwordHash string) error {
	f.byEmail[emp.Email] = emp
	f.hashes[emp.Email] = passwordHash
	return nil
}

func (f *fakeEmployeeStore) GetActiveByCode(_ context.Context, code string) (employee.Employee, error) {
	for _, emp := range f.byEmail {
		if emp.Code == code && emp.Status == employee.StatusActive {
			return emp, nil
		}
	}
	return employee.Employee{}, employee.ErrNotFound
}

func (f *fakeEmployeeStore) GetByEmail(_ context.Context, email string) (employee.Employee, string, error) {
	emp, ok := f.byEmail[email]
	if !ok {
		return employee.Employee{}, "", employee.ErrNotFound
	}
	return emp, f.hashes[email], nil
}

func (f *fakeEmployeeStore) List(context.Context, int, int) ([]employee.Employee, error) {
	return nil, nil
}

func (f *fakeEmployeeStore) Update(context.Context, string, employee.UpdateParams) error { return nil }

func (f *fakeEmployeeStore) Disable(context.Context, string) (bool, error) { return false, nil }

const testSecret = "test-secret"

func newTestService() (*Service, *fakeEmployeeStore) {
	store := newFakeEmployeeStore()
	return NewService(store, testSecret, time.Hour), store
}

var registerInput = RegisterInput{
	FirstName: "Jane",
	LastName:  "Doe",
	Email:     "jane@example.com",
	Mobile:    "0788000000",
	Password:  "s3cret-pass",
}

func TestRegisterFirstAccountBecomesAdmin(t *testing.T) {
	svc, _ := newTestService()

	emp, err := svc.Register(context.Background(), identity.Principal{}, registerInput, identity.RoleEmployee)
	require.NoError(t, err)
	assert.Equal(t, []string{"ROLE_ADMIN"}, emp.Roles)
	assert.Equal(t, employee.StatusActive, emp.Status)
	assert.NotEmpty(t, emp.Code)
}

func TestRegisterRequiresPrivilegeAfterBootstrap(t *testing.T) {
	svc, _ := newTestService()

	admin, err := svc.Register(context.Background(), identity.Principal{}, registerInput, identity.RoleEmployee)
	require.NoError(t, err)
	adminPrincipal := identity.Principal{EmployeeCode: admin.Code, Roles: admin.Roles}

	second := registerInput
	second.Email = "john@example.com"

	// Anonymous callers are shut out once an account exists.
	_, err = svc.Register(context.Background(), identity.Principal{}, second, identity.RoleEmployee)
	assert.ErrorIs(t, err, identity.ErrPermissionDenied)

	// A manager may create employees but not other managers.
	mgr := identity.Principal{EmployeeCode: "mgr-1", Roles: []string{identity.RoleManager}}
	_, err = svc.Register(context.Background(), mgr, second, identity.RoleEmployee)
	require.NoError(t, err)

	third := registerInput
	third.Email = "kate@example.com"
	_, err = svc.Register(context.Background(), mgr, third, identity.RoleManager)
	assert.ErrorIs(t, err, identity.ErrPermissionDenied)

	_, err = svc.Register(context.Background(), adminPrincipal, third, identity.RoleManager)
	assert.NoError(t, err)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newTestService()

	admin, err := svc.Register(context.Background(), identity.Principal{}, registerInput, identity.RoleEmployee)
	require.NoError(t, err)

	dup := registerInput
	dup.Email = "JANE@example.com" // emails are normalized before lookup
	_, err = svc.Register(context.Background(), identity.Principal{EmployeeCode: admin.Code, Roles: admin.Roles}, dup, identity.RoleEmployee)
	assert.ErrorIs(t, err, employee.ErrEmailTaken)
}

func TestRegisterRejectsUnknownRole(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), identity.Principal{}, registerInput, "SUPERUSER")
	assert.ErrorIs(t, err, ErrInvalidRole)
}

func TestLoginIssuesToken(t *testing.T) {
	svc, _ := newTestService()

	emp, err := svc.Register(context.Background(), identity.Principal{}, registerInput, identity.RoleEmployee)
	require.NoError(t, err)

	out, err := svc.Login(context.Background(), "jane@example.com", "s3cret-pass")
	require.NoError(t, err)
	assert.Equal(t, emp.Code, out.Employee.Code)

	claims, err := auth.ParseToken(testSecret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, emp.Code, claims.EmployeeCode)
	assert.Equal(t, "jane@example.com", claims.Subject)
	assert.Equal(t, []string{"ROLE_ADMIN"}, claims.Roles)
}

func TestLoginFailuresAreOpaque(t *testing.T) {
	svc, store := newTestService()

	emp, err := svc.Register(context.Background(), identity.Principal{}, registerInput, identity.RoleEmployee)
	require.NoError(t, err)

	_, err = svc.Login(context.Background(), "nobody@example.com", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(context.Background(), "jane@example.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	// Disabled accounts fail the same way.
	disabled := store.byEmail[emp.Email]
	disabled.Status = employee.StatusDisabled
	store.byEmail[emp.Email] = disabled
	_, err = svc.Login(context.Background(), "jane@example.com", "s3cret-pass")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
