package services

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"github.com/cictrix/hris-backend/models"
	"github.com/cictrix/hris-backend/rbac"
	"github.com/cictrix/hris-backend/repositories"
)

// ApplicantService orchestrates role policy decisions and row-store access
// for applicant records
type ApplicantService struct {
	repo   repositories.ApplicantRepository
	logger *zap.Logger
}

// NewApplicantService constructs a new ApplicantService
func NewApplicantService(repo repositories.ApplicantRepository, logger *zap.Logger) *ApplicantService {
	return &ApplicantService{
		repo:   repo,
		logger: logger,
	}
}

// List returns the applicant rows the principal may see. The row-level
// scope is computed by the policy layer and pushed into the query, so list
// results are silently narrowed rather than rejected after the fact.
func (s *ApplicantService) List(ctx context.Context, principal models.Principal, skip, limit int) ([]models.Applicant, error) {
	scope := rbac.ListScope(principal, rbac.ResourceApplicant)

	q := repositories.ApplicantQuery{Skip: skip, Limit: limit}
	switch scope.Kind {
	case rbac.ScopeNone:
		return nil, ErrForbidden
	case rbac.ScopeOwnEmail:
		q.Email = &scope.Email
	}

	rows, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, rowStoreError("Failed to fetch applicants", err)
	}
	return rows, nil
}

// Get retrieves a single applicant. A missing id is NotFound; an existing
// row the principal does not own is Forbidden. The 403-on-foreign-row
// behavior for applicant self-access is deliberate and mirrors the
// documented API contract.
func (s *ApplicantService) Get(ctx context.Context, principal models.Principal, id string) (*models.Applicant, error) {
	row, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNoRows) {
			return nil, ErrApplicantNotFound
		}
		return nil, rowStoreError("Failed to fetch applicant", err)
	}

	decision := rbac.Authorize(principal, rbac.ResourceApplicant, rbac.OpGet, &rbac.RowOwner{Email: row.Email})
	if !decision.Allowed() {
		s.logger.Warn("applicant access denied",
			zap.String("applicant_id", id),
			zap.String("role", string(principal.Role)))
		return nil, ErrOwnProfileOnly
	}

	return row, nil
}

// Update applies a partial update to an applicant. The coarse role gate is
// re-checked here so the service stays safe regardless of route wiring;
// existence is verified before the mutation so a missing id surfaces as
// NotFound rather than an empty update.
func (s *ApplicantService) Update(ctx context.Context, principal models.Principal, id string, patch *models.ApplicantUpdate) (*models.Applicant, error) {
	if !rbac.Authorize(principal, rbac.ResourceApplicant, rbac.OpUpdate, nil).Allowed() {
		return nil, ErrForbidden
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repositories.ErrNoRows) {
			return nil, ErrApplicantNotFound
		}
		return nil, rowStoreError("Failed to fetch applicant", err)
	}

	// An empty patch changes nothing; skip the round trip
	if patch.IsEmpty() {
		return current, nil
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, repositories.ErrNoRows) {
			return nil, ErrApplicantNotFound
		}
		return nil, rowStoreError("Failed to update applicant", err)
	}

	s.logger.Info("applicant updated",
		zap.String("applicant_id", id),
		zap.String("updated_by", principal.UserID))
	return updated, nil
}
