package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"epms/internal/auth"
	"epms/internal/domain/identity"
	"epms/internal/requestctx"
)

const testSecret = "middleware-secret"

func principalProbe(t *testing.T, captured *identity.Principal) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*captured = requestctx.GetPrincipal(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthPopulatesPrincipal(t *testing.T) {
	token, err := auth.GenerateToken(testSecret, auth.Claims{
		EmployeeCode:     "emp-1",
		Roles:            []string{identity.RoleManager},
		RegisteredClaims: jwt.RegisteredClaims{Subject: "jane@example.com"},
	}, time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	var got identity.Principal
	handler := Auth(testSecret)(principalProbe(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got.EmployeeCode != "emp-1" {
		t.Fatalf("employee code = %q, want emp-1", got.EmployeeCode)
	}
	if got.Email != "jane@example.com" {
		t.Fatalf("email = %q", got.Email)
	}
	if !got.HasRole(identity.RoleManager) {
		t.Fatalf("expected manager role, got %v", got.Roles)
	}
}

func TestAuthIgnoresInvalidTokens(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"malformed header", "Bearer"},
		{"garbage token", "Bearer not-a-token"},
		{"wrong scheme", "Basic abc123"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var got identity.Principal
			handler := Auth(testSecret)(principalProbe(t, &got))

			req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
			if tc.header != "" {
				req.Header.Set("Authorization", tc.header)
			}
			handler.ServeHTTP(httptest.NewRecorder(), req)

			if got.Authenticated() {
				t.Fatalf("expected anonymous principal, got %+v", got)
			}
		})
	}
}

func TestAuthRejectsWrongSecret(t *testing.T) {
	token, err := auth.GenerateToken("other-secret", auth.Claims{EmployeeCode: "emp-1"}, time.Hour)
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	var got identity.Principal
	handler := Auth(testSecret)(principalProbe(t, &got))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if got.Authenticated() {
		t.Fatalf("expected anonymous principal for forged token")
	}
}

func TestRequireAuth(t *testing.T) {
	handler := RequireAuth(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/v1/employees", nil))
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rec.Code)
	}
}
