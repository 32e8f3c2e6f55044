package middleware

import (
	"net/http"
	"strings"

	"epms/internal/auth"
	"epms/internal/domain/identity"
	"epms/internal/requestctx"
	"epms/internal/transport/http/api"
)

// Auth resolves a bearer token into a principal. Requests without a valid
// token pass through anonymous; route guards decide whether that is allowed.
func Auth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				next.ServeHTTP(w, r)
				return
			}
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				next.ServeHTTP(w, r)
				return
			}

			claims, err := auth.ParseToken(secret, parts[1])
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			ctx := requestctx.WithPrincipal(r.Context(), identity.Principal{
				EmployeeCode: claims.EmployeeCode,
				Email:        claims.Subject,
				Roles:        claims.Roles,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireAuth rejects anonymous requests. Role and ownership checks happen
// in the services.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !requestctx.GetPrincipal(r.Context()).Authenticated() {
			api.Fail(w, http.StatusUnauthorized, "unauthorized", "authentication required", requestctx.GetRequestID(r.Context()))
			return
		}
		next.ServeHTTP(w, r)
	})
}
