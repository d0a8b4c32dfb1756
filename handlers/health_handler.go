package handlers

import (
	"context"
	"net/http"

	"go.uber.org/zap"

	"github.com/cictrix/hris-backend/utils"
)

// ReadinessChecker reports whether the row store is reachable.
type ReadinessChecker interface {
	HealthCheck(ctx context.Context) error
}

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	checker ReadinessChecker
	logger  *zap.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(checker ReadinessChecker, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		checker: checker,
		logger:  logger,
	}
}

// HandleRoot handles GET /
func (h *HealthHandler) HandleRoot(w http.ResponseWriter, r *http.Request) {
	if err := utils.WriteOK(w, map[string]string{
		"message": "CICTrix HRIS API is running",
	}); err != nil {
		h.logger.Error("failed to write root response", zap.Error(err))
	}
}

// HandleHealth handles GET /health
func (h *HealthHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	if err := utils.WriteOK(w, map[string]string{
		"status": "healthy",
	}); err != nil {
		h.logger.Error("failed to write health response", zap.Error(err))
	}
}

// HandleReadiness handles GET /health/ready. It probes the row store with
// the service credentials so deploys fail fast on a bad key or URL.
func (h *HealthHandler) HandleReadiness(w http.ResponseWriter, r *http.Request) {
	if err := h.checker.HealthCheck(r.Context()); err != nil {
		h.logger.Warn("readiness check failed", zap.Error(err))
		if werr := utils.WriteJSON(w, http.StatusServiceUnavailable, map[string]string{
			"status": "unavailable",
		}); werr != nil {
			h.logger.Error("failed to write readiness response", zap.Error(werr))
		}
		return
	}

	if err := utils.WriteOK(w, map[string]string{
		"status": "ready",
	}); err != nil {
		h.logger.Error("failed to write readiness response", zap.Error(err))
	}
}
