package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/cictrix/hris-backend/models"
	"github.com/cictrix/hris-backend/utils"
)

// AuthService defines the authentication operations the handler needs
type AuthService interface {
	Login(ctx context.Context, email, password string) (*models.LoginResponse, error)
}

// AuthHandler handles authentication endpoints
type AuthHandler struct {
	service AuthService
	logger  *zap.Logger
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(service AuthService, logger *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		logger:  logger,
	}
}

// HandleLogin handles POST /api/auth/login
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		if werr := utils.WriteBadRequest(w, "Invalid request body", nil); werr != nil {
			h.logger.Error("failed to write bad request response", zap.Error(werr))
		}
		return
	}

	if err := utils.ValidateStruct(&req); err != nil {
		HandleValidationError(w, err, h.logger)
		return
	}

	resp, err := h.service.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	if err := utils.WriteOK(w, resp); err != nil {
		h.logger.Error("failed to write login response", zap.Error(err))
	}
}

// HandleLogout handles POST /api/auth/logout. Tokens are stateless, so
// logout is a client-side discard; the server just acknowledges.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := utils.WriteOK(w, map[string]string{
		"message": "Logged out successfully",
	}); err != nil {
		h.logger.Error("failed to write logout response", zap.Error(err))
	}
}

// HandleMe handles GET /api/auth/me. The route is mounted outside the auth
// middleware, so no principal is ever present and the endpoint always
// reports unauthenticated.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	if err := utils.WriteUnauthorized(w, "Not authenticated"); err != nil {
		h.logger.Error("failed to write me response", zap.Error(err))
	}
}
