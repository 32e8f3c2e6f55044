package identity

import (
	"errors"
	"strings"
)

const (
	RoleAdmin    = "ADMIN"
	RoleManager  = "MANAGER"
	RoleEmployee = "EMPLOYEE"

	rolePrefix = "ROLE_"
)

var ErrPermissionDenied = errors.New("permission denied")

// Principal is the authenticated caller, threaded explicitly into every
// service operation. The zero value carries no roles and denies everything.
type Principal struct {
	EmployeeCode string
	Email        string
	Roles        []string
}

func (p Principal) Authenticated() bool {
	return p.EmployeeCode != "" || p.Email != ""
}

// HasRole reports whether the caller's authority set contains the given role.
// Role names are compared in their ROLE_-prefixed authority form.
func (p Principal) HasRole(role string) bool {
	want := Authority(role)
	for _, have := range p.Roles {
		if Authority(have) == want {
			return true
		}
	}
	return false
}

func (p Principal) HasAnyRole(roles ...string) bool {
	for _, role := range roles {
		if p.HasRole(role) {
			return true
		}
	}
	return false
}

func (p Principal) IsCurrentUser(employeeCode string) bool {
	return p.EmployeeCode != "" && p.EmployeeCode == employeeCode
}

// CanManageEmployee permits managers and admins outright, otherwise falls
// back to the ownership check.
func (p Principal) CanManageEmployee(employeeCode string) bool {
	if p.HasAnyRole(RoleManager, RoleAdmin) {
		return true
	}
	return p.IsCurrentUser(employeeCode)
}

// Authority normalizes a role name to its ROLE_-prefixed authority form.
// Accepts both "ADMIN" and "ROLE_ADMIN".
func Authority(role string) string {
	role = strings.ToUpper(strings.TrimSpace(role))
	if role == "" {
		return ""
	}
	if strings.HasPrefix(role, rolePrefix) {
		return role
	}
	return rolePrefix + role
}

// RoleName strips the authority prefix for client-facing role sets.
func RoleName(authority string) string {
	return strings.TrimPrefix(authority, rolePrefix)
}

// ValidAuthority reports whether the authority names one of the known roles.
func ValidAuthority(authority string) bool {
	switch authority {
	case rolePrefix + RoleAdmin, rolePrefix + RoleManager, rolePrefix + RoleEmployee:
		return true
	}
	return false
}
