package middleware

import (
	"context"
	"net/http"
	"strings"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/cictrix/hris-backend/models"
	"github.com/cictrix/hris-backend/utils"
)

// TokenValidator resolves a raw bearer credential into a Principal
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (*models.Principal, error)
}

// AuthMiddleware provides authentication and coarse role-gating middleware
type AuthMiddleware struct {
	validator TokenValidator
	logger    *zap.Logger
}

// NewAuthMiddleware creates a new AuthMiddleware
func NewAuthMiddleware(validator TokenValidator, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		validator: validator,
		logger:    logger,
	}
}

// RequireAuth is a middleware that requires a valid bearer token. On success
// the resolved Principal is stored in the request context; every failure
// (absent, malformed, badly signed, expired) yields 401 with a bearer
// challenge. Unknown role strings pass here and are denied downstream.
func (m *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		requestID := chimiddleware.GetReqID(ctx)

		tokenString := extractBearerToken(r)
		if tokenString == "" {
			m.logger.Warn("missing bearer token",
				zap.String("request_id", requestID))
			_ = utils.WriteUnauthorized(w, "Missing or invalid authorization")
			return
		}

		principal, err := m.validator.ValidateToken(ctx, tokenString)
		if err != nil {
			m.logger.Warn("token validation failed",
				zap.String("request_id", requestID),
				zap.Error(err))
			_ = utils.WriteUnauthorized(w, "Invalid authentication credentials")
			return
		}

		ctx = WithPrincipal(ctx, principal)

		m.logger.Debug("authentication successful",
			zap.String("request_id", requestID),
			zap.String("user_id", principal.UserID),
			zap.String("role", string(principal.Role)))

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole is a middleware that requires the principal's role to be in
// the allowed set. This is the coarse authorization layer; it runs before
// any row-store query and short-circuits with 403.
func (m *AuthMiddleware) RequireRole(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			requestID := chimiddleware.GetReqID(ctx)

			principal := GetPrincipalFromContext(ctx)
			if principal == nil {
				m.logger.Error("principal not found in context",
					zap.String("request_id", requestID))
				_ = utils.WriteUnauthorized(w, "Authentication required")
				return
			}

			hasRole := false
			for _, role := range roles {
				if principal.Role == role {
					hasRole = true
					break
				}
			}

			if !hasRole {
				m.logger.Warn("insufficient permissions",
					zap.String("request_id", requestID),
					zap.String("role", string(principal.Role)))
				_ = utils.WriteForbidden(w, "User does not have required role")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// extractBearerToken extracts the bearer token from the Authorization header
func extractBearerToken(r *http.Request) string {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return ""
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
		return ""
	}

	return strings.TrimSpace(parts[1])
}
