package services

import (
	"context"

	"go.uber.org/zap"

	"github.com/cictrix/hris-backend/models"
	"github.com/cictrix/hris-backend/rbac"
	"github.com/cictrix/hris-backend/repositories"
)

// EvaluationService orchestrates role policy decisions and row-store access
// for evaluation records
type EvaluationService struct {
	repo   repositories.EvaluationRepository
	logger *zap.Logger
}

// NewEvaluationService constructs a new EvaluationService
func NewEvaluationService(repo repositories.EvaluationRepository, logger *zap.Logger) *EvaluationService {
	return &EvaluationService{
		repo:   repo,
		logger: logger,
	}
}

// List returns the evaluation rows the principal may see, optionally
// narrowed to one applicant. Raters and interviewers only see rows they
// created; the filter is part of the row-store query.
func (s *EvaluationService) List(ctx context.Context, principal models.Principal, applicantID *string) ([]models.Evaluation, error) {
	scope := rbac.ListScope(principal, rbac.ResourceEvaluation)

	q := repositories.EvaluationQuery{ApplicantID: applicantID}
	switch scope.Kind {
	case rbac.ScopeNone:
		return nil, ErrForbidden
	case rbac.ScopeOwnEvaluations:
		q.EvaluatorID = &scope.EvaluatorID
	}

	rows, err := s.repo.List(ctx, q)
	if err != nil {
		return nil, rowStoreError("Failed to fetch evaluations", err)
	}
	return rows, nil
}

// Create inserts an evaluation for the principal. The evaluator identity is
// always stamped from the principal; anything the client claims is discarded
// so an evaluator cannot impersonate another.
func (s *EvaluationService) Create(ctx context.Context, principal models.Principal, in models.EvaluationCreate) (*models.Evaluation, error) {
	if !rbac.Authorize(principal, rbac.ResourceEvaluation, rbac.OpCreate, nil).Allowed() {
		return nil, ErrForbidden
	}

	evaluation := &models.Evaluation{
		ApplicantID: in.ApplicantID,
		EvaluatorID: principal.UserID,
		Score:       in.Score,
		Comments:    in.Comments,
	}

	created, err := s.repo.Create(ctx, evaluation)
	if err != nil {
		return nil, rowStoreError("Failed to create evaluation", err)
	}

	s.logger.Info("evaluation created",
		zap.String("evaluation_id", created.ID),
		zap.String("applicant_id", created.ApplicantID),
		zap.String("evaluator_id", created.EvaluatorID))
	return created, nil
}
