package middleware

import (
	"context"

	"github.com/cictrix/hris-backend/models"
)

// Context key type to avoid collisions
type contextKey string

// PrincipalKey is the context key for the authenticated principal
const PrincipalKey contextKey = "principal"

// WithPrincipal adds the authenticated principal to the context
func WithPrincipal(ctx context.Context, p *models.Principal) context.Context {
	return context.WithValue(ctx, PrincipalKey, p)
}

// GetPrincipalFromContext retrieves the authenticated principal from context.
// Returns nil when the request did not pass RequireAuth.
func GetPrincipalFromContext(ctx context.Context) *models.Principal {
	if val := ctx.Value(PrincipalKey); val != nil {
		if p, ok := val.(*models.Principal); ok {
			return p
		}
	}
	return nil
}
