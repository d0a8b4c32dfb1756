package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/cictrix/hris-backend/models"
	"github.com/cictrix/hris-backend/token"
)

// AuthService handles authentication flows. Login is an intentional
// placeholder: credentials are expected to come from an external auth
// provider whose tokens this server re-issues through the codec, and that
// integration has not landed yet.
type AuthService struct {
	codec  *token.Codec
	logger *zap.Logger
}

// NewAuthService constructs a new AuthService
func NewAuthService(codec *token.Codec, logger *zap.Logger) *AuthService {
	return &AuthService{
		codec:  codec,
		logger: logger,
	}
}

// Login authenticates a user and returns a signed access token.
// Always fails with ErrLoginNotImplemented until the provider integration
// lands; the codec is already wired so the flow only needs the credential
// verification step.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	s.logger.Info("login attempted", zap.String("email", email))
	return nil, ErrLoginNotImplemented
}

// IssueToken creates a signed access token for a verified identity. This is
// the half of the login flow that already works; it is exercised directly by
// operational tooling until Login is completed.
func (s *AuthService) IssueToken(userID, email string, role models.Role) (*models.LoginResponse, error) {
	signed, err := s.codec.Issue(userID, email, string(role))
	if err != nil {
		return nil, NewDomainError(ErrorTypeInternal, "failed to issue token", err)
	}

	return &models.LoginResponse{
		AccessToken: signed,
		TokenType:   "bearer",
		User: models.Principal{
			UserID: userID,
			Email:  email,
			Role:   role,
		},
	}, nil
}
