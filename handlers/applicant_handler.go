package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/cictrix/hris-backend/middleware"
	"github.com/cictrix/hris-backend/models"
	"github.com/cictrix/hris-backend/utils"
)

const (
	defaultListLimit = 10
	maxListLimit     = 100
)

// ApplicantService defines the applicant operations the handler needs
type ApplicantService interface {
	List(ctx context.Context, principal models.Principal, skip, limit int) ([]models.Applicant, error)
	Get(ctx context.Context, principal models.Principal, id string) (*models.Applicant, error)
	Update(ctx context.Context, principal models.Principal, id string, patch *models.ApplicantUpdate) (*models.Applicant, error)
}

// ApplicantHandler handles applicant endpoints
type ApplicantHandler struct {
	service ApplicantService
	logger  *zap.Logger
}

// NewApplicantHandler creates a new applicant handler
func NewApplicantHandler(service ApplicantService, logger *zap.Logger) *ApplicantHandler {
	return &ApplicantHandler{
		service: service,
		logger:  logger,
	}
}

// HandleList handles GET /api/applicants
func (h *ApplicantHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipalFromContext(r.Context())
	if principal == nil {
		if err := utils.WriteUnauthorized(w, ""); err != nil {
			h.logger.Error("failed to write unauthorized response", zap.Error(err))
		}
		return
	}

	skip, limit, err := parsePagination(r)
	if err != nil {
		if werr := utils.WriteBadRequest(w, err.Error(), nil); werr != nil {
			h.logger.Error("failed to write bad request response", zap.Error(werr))
		}
		return
	}

	applicants, err := h.service.List(r.Context(), *principal, skip, limit)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	if err := utils.WriteOK(w, applicants); err != nil {
		h.logger.Error("failed to write applicants response", zap.Error(err))
	}
}

// HandleGet handles GET /api/applicants/{id}
func (h *ApplicantHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipalFromContext(r.Context())
	if principal == nil {
		if err := utils.WriteUnauthorized(w, ""); err != nil {
			h.logger.Error("failed to write unauthorized response", zap.Error(err))
		}
		return
	}

	id := chi.URLParam(r, "id")
	if err := utils.ValidateUUID(id); err != nil {
		if werr := utils.WriteBadRequest(w, "Invalid applicant ID", nil); werr != nil {
			h.logger.Error("failed to write bad request response", zap.Error(werr))
		}
		return
	}

	applicant, err := h.service.Get(r.Context(), *principal, id)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	if err := utils.WriteOK(w, applicant); err != nil {
		h.logger.Error("failed to write applicant response", zap.Error(err))
	}
}

// HandleUpdate handles PUT /api/applicants/{id}
func (h *ApplicantHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	principal := middleware.GetPrincipalFromContext(r.Context())
	if principal == nil {
		if err := utils.WriteUnauthorized(w, ""); err != nil {
			h.logger.Error("failed to write unauthorized response", zap.Error(err))
		}
		return
	}

	id := chi.URLParam(r, "id")
	if err := utils.ValidateUUID(id); err != nil {
		if werr := utils.WriteBadRequest(w, "Invalid applicant ID", nil); werr != nil {
			h.logger.Error("failed to write bad request response", zap.Error(werr))
		}
		return
	}

	var patch models.ApplicantUpdate
	decoder := json.NewDecoder(r.Body)
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(&patch); err != nil {
		if werr := utils.WriteBadRequest(w, "Invalid request body", nil); werr != nil {
			h.logger.Error("failed to write bad request response", zap.Error(werr))
		}
		return
	}

	if err := utils.ValidateStruct(&patch); err != nil {
		HandleValidationError(w, err, h.logger)
		return
	}

	applicant, err := h.service.Update(r.Context(), *principal, id, &patch)
	if err != nil {
		HandleServiceError(w, err, h.logger)
		return
	}

	if err := utils.WriteOK(w, applicant); err != nil {
		h.logger.Error("failed to write applicant response", zap.Error(err))
	}
}

// parsePagination reads skip and limit from the query string.
// skip defaults to 0 and must be non-negative; limit defaults to 10
// and must be between 1 and 100.
func parsePagination(r *http.Request) (skip, limit int, err error) {
	skip = 0
	limit = defaultListLimit

	if raw := r.URL.Query().Get("skip"); raw != "" {
		skip, err = strconv.Atoi(raw)
		if err != nil || skip < 0 {
			return 0, 0, errInvalidSkip
		}
	}

	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit < 1 || limit > maxListLimit {
			return 0, 0, errInvalidLimit
		}
	}

	return skip, limit, nil
}

var (
	errInvalidSkip  = paginationError("skip must be a non-negative integer")
	errInvalidLimit = paginationError("limit must be an integer between 1 and 100")
)

type paginationError string

func (e paginationError) Error() string { return string(e) }
