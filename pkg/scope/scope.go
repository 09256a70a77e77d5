package scope

import (
	"context"
	"errors"
)

// ErrNoTenant is returned by use cases reached without a tenant in context.
var ErrNoTenant = errors.New("no tenant in context")

// Scope identifies the tenant and user a request acts for.
type Scope struct {
	TenantID string
	UserID   string
}

type scopeKey struct{}

// SetToContext stores s in ctx.
func SetToContext(ctx context.Context, s Scope) context.Context {
	return context.WithValue(ctx, scopeKey{}, s)
}

// FromContext returns the Scope stored in ctx. ok is false when none was set.
func FromContext(ctx context.Context) (Scope, bool) {
	s, ok := ctx.Value(scopeKey{}).(Scope)
	return s, ok && s.TenantID != ""
}
