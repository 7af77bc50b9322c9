package auth

import (
	"context"

	"github.com/stocktrack/inventory-api/internal/core/domain"
)

// SecurityContext identifies the authenticated caller for a single request.
// It is built by the auth middleware from validated token claims, passed
// explicitly down the handler chain, and discarded when the request ends.
type SecurityContext struct {
	Subject string
	Role    domain.Role
}

type contextKey int

const securityContextKey contextKey = iota

// WithSecurityContext returns a context carrying sc.
func WithSecurityContext(ctx context.Context, sc SecurityContext) context.Context {
	return context.WithValue(ctx, securityContextKey, sc)
}

// SecurityContextFrom retrieves the security context, if any.
func SecurityContextFrom(ctx context.Context) (SecurityContext, bool) {
	sc, ok := ctx.Value(securityContextKey).(SecurityContext)
	return sc, ok
}
