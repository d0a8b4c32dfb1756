package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cictrix/hris-backend/config"
	"github.com/cictrix/hris-backend/models"
	"github.com/cictrix/hris-backend/token"
)

func testAuthService(t *testing.T) *AuthService {
	t.Helper()
	codec, err := token.NewCodec(config.JWTConfig{
		Secret:          "test-secret",
		Algorithm:       "HS256",
		ExpirationHours: 24,
	})
	require.NoError(t, err)
	return NewAuthService(codec, zap.NewNop())
}

func TestAuthService_Login_Unimplemented(t *testing.T) {
	svc := testAuthService(t)

	_, err := svc.Login(context.Background(), "user@example.com", "password")
	require.Error(t, err)
	assert.True(t, IsUnimplementedError(err))
}

func TestAuthService_IssueToken(t *testing.T) {
	svc := testAuthService(t)

	resp, err := svc.IssueToken("user-1", "user@example.com", models.RoleRater)
	require.NoError(t, err)
	assert.Equal(t, "bearer", resp.TokenType)
	assert.NotEmpty(t, resp.AccessToken)
	assert.Equal(t, models.Principal{
		UserID: "user-1",
		Email:  "user@example.com",
		Role:   models.RoleRater,
	}, resp.User)
}

func TestAuthService_IssueToken_RequiresIdentity(t *testing.T) {
	svc := testAuthService(t)

	_, err := svc.IssueToken("", "user@example.com", models.RoleRater)
	require.Error(t, err)
	assert.True(t, IsInternalError(err))
}
