package account

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"epms/internal/auth"
	"epms/internal/domain/employee"
	"epms/internal/domain/identity"
)

type RegisterInput struct {
	FirstName   string
	LastName    string
	Email       string
	Mobile      string
	DateOfBirth *time.Time
	Password    string
}

type TokenOutput struct {
	Token     string            `json:"token"`
	ExpiresAt time.Time         `json:"expiresAt"`
	Employee  employee.Employee `json:"employee"`
}

type Service struct {
	employees employee.StoreAPI
	jwtSecret string
	tokenTTL  time.Duration
}

func NewService(employees employee.StoreAPI, jwtSecret string, tokenTTL time.Duration) *Service {
	return &Service{employees: employees, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Register creates an account holding the given role. The very first account
// bootstraps the system and always becomes an admin, no caller required.
// After that, granting ADMIN or MANAGER takes an admin caller, and granting
// EMPLOYEE takes a manager or admin.
func (s *Service) Register(ctx context.Context, caller identity.Principal, input RegisterInput, role string) (employee.Employee, error) {
	role = identity.Authority(role)
	if !identity.ValidAuthority(role) {
		return employee.Employee{}, ErrInvalidRole
	}

	count, err := s.employees.Count(ctx)
	if err != nil {
		return employee.Employee{}, err
	}
	if count == 0 {
		role = identity.Authority(identity.RoleAdmin)
	} else {
		switch identity.RoleName(role) {
		case identity.RoleEmployee:
			if !caller.HasAnyRole(identity.RoleManager, identity.RoleAdmin) {
				return employee.Employee{}, identity.ErrPermissionDenied
			}
		default:
			if !caller.HasRole(identity.RoleAdmin) {
				return employee.Employee{}, identity.ErrPermissionDenied
			}
		}
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))
	taken, err := s.employees.ExistsByEmail(ctx, email)
	if err != nil {
		return employee.Employee{}, err
	}
	if taken {
		return employee.Employee{}, employee.ErrEmailTaken
	}

	hash, err := auth.HashPassword(input.Password)
	if err != nil {
		return employee.Employee{}, err
	}

	emp := employee.Employee{
		Code:        uuid.NewString(),
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Email:       email,
		Mobile:      input.Mobile,
		DateOfBirth: input.DateOfBirth,
		Roles:       []string{role},
		Status:      employee.StatusActive,
		CreatedAt:   time.Now().UTC(),
	}
	if err := s.employees.Create(ctx, emp, hash); err != nil {
		return employee.Employee{}, err
	}
	return emp, nil
}

// Login verifies credentials and issues a signed token carrying the
// employee's code and roles. All failure modes look identical to the caller.
func (s *Service) Login(ctx context.Context, email, password string) (TokenOutput, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	emp, hash, err := s.employees.GetByEmail(ctx, email)
	if errors.Is(err, employee.ErrNotFound) {
		return TokenOutput{}, ErrInvalidCredentials
	}
	if err != nil {
		return TokenOutput{}, err
	}
	if emp.Status != employee.StatusActive {
		return TokenOutput{}, ErrInvalidCredentials
	}
	if err := auth.CheckPassword(hash, password); err != nil {
		return TokenOutput{}, ErrInvalidCredentials
	}

	expiresAt := time.Now().Add(s.tokenTTL)
	token, err := auth.GenerateToken(s.jwtSecret, auth.Claims{
		EmployeeCode:     emp.Code,
		Roles:            emp.Roles,
		RegisteredClaims: jwt.RegisteredClaims{Subject: emp.Email},
	}, s.tokenTTL)
	if err != nil {
		return TokenOutput{}, err
	}
	return TokenOutput{Token: token, ExpiresAt: expiresAt, Employee: emp}, nil
}
