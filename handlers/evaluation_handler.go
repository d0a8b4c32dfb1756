package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/cictrix/hris-backend/middleware"
	"github.com/cictrix/hris-backend/models"
	"github.com/cictrix/hris-backend/utils"
)

// EvaluationService defines the evaluation operations the handler needs
type EvaluationService interface {
	List(ctx context.Context, principal models.Principal, applicantID *string) ([]models.Evaluation, error)
	Create(ctx context.Context, principal models.Principal, in models.EvaluationCreate) (*models.Evaluation, error)
}

// EvaluationHandler handles evaluation endpoints
type EvaluationHandler struct {
	service EvaluationService
	logger  *zap.Logger
}

// NewEvaluationHandler creates a new evaluation handler
func NewEvaluationHandler(service EvaluationService, logger *zap.Logger) *EvaluationHandler {
	return &EvaluationHandler{
		service: service,
		logger:  logger,
	}
}

// HandleList handles GET /api/evaluations
func (h *EvaluationHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipalFromContext(r.Context())
	if principal == nil {
		if err := utils.WriteUnauthorized(w, ""); err != nil {
			h.logger.Error("failed to write unauthorized response", zap.Error(err))
		}
		return
	}

	var applicantID *string
	if raw := r.URL.Query().Get("applicant_id"); raw != "" {
		if err := utils.ValidateUUID(raw); err != nil {
			if werr := utils.WriteBadRequest(w, "Invalid applicant_id filter", nil); werr != nil {
				h.logger.Error("failed to write bad request response", zap.Error(werr))
			}
			return
		}
		applicantID = &raw
	}

	evaluations, err := h.service.List(r.Context(), *principal, applicantID)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	if err := utils.WriteOK(w, evaluations); err != nil {
		h.logger.Error("failed to write evaluations response", zap.Error(err))
	}
}

// HandleCreate handles POST /api/evaluations
func (h *EvaluationHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipalFromContext(r.Context())
	if principal == nil {
		if err := utils.WriteUnauthorized(w, ""); err != nil {
			h.logger.Error("failed to write unauthorized response", zap.Error(err))
		}
		return
	}

	var in models.EvaluationCreate
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		if werr := utils.WriteBadRequest(w, "Invalid request body", nil); werr != nil {
			h.logger.Error("failed to write bad request response", zap.Error(werr))
		}
		return
	}

	if err := utils.ValidateStruct(&in); err != nil {
		HandleValidationError(w, err, h.logger)
		return
	}

	evaluation, err := h.service.Create(r.Context(), *principal, in)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	if err := utils.WriteOK(w, evaluation); err != nil {
		h.logger.Error("failed to write evaluation response", zap.Error(err))
	}
}
