package requestctx

import (
	"context"

	"epms/internal/domain/identity"
)

type ctxKey string

const (
	requestIDKey ctxKey = "request_id"
	principalKey ctxKey = "principal"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

func GetRequestID(ctx context.Context) string {
	if value, ok := ctx.Value(requestIDKey).(string); ok {
		return value
	}
	return ""
}

func WithPrincipal(ctx context.Context, principal identity.Principal) context.Context {
	return context.WithValue(ctx, principalKey, principal)
}

// GetPrincipal returns the authenticated caller, or a zero principal for
// anonymous requests.
func GetPrincipal(ctx context.Context) identity.Principal {
	if value, ok := ctx.Value(principalKey).(identity.Principal); ok {
		return value
	}
	return identity.Principal{}
}
