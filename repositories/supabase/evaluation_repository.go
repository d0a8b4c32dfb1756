package supabase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cictrix/hris-backend/models"
	"github.com/cictrix/hris-backend/repositories"
)

const evaluationsTable = "evaluations"

// evaluationInsert is the exact row shape sent on creation; the id and
// timestamps are generated by the row store.
type evaluationInsert struct {
	ApplicantID string  `json:"applicant_id"`
	EvaluatorID string  `json:"evaluator_id"`
	Score       float64 `json:"score"`
	Comments    *string `json:"comments"`
}

// EvaluationRepository implements repositories.EvaluationRepository against
// the PostgREST row store
type EvaluationRepository struct {
	client *Client
	logger *zap.Logger
}

// NewEvaluationRepository creates a new evaluation repository
func NewEvaluationRepository(client *Client, logger *zap.Logger) repositories.EvaluationRepository {
	return &EvaluationRepository{
		client: client,
		logger: logger,
	}
}

// List retrieves evaluations matching the query
func (r *EvaluationRepository) List(ctx context.Context, q repositories.EvaluationQuery) ([]models.Evaluation, error) {
	fb := r.client.Anon().From(evaluationsTable).Select("*", "", false)

	if q.ApplicantID != nil {
		fb = fb.Eq("applicant_id", *q.ApplicantID)
	}
	if q.EvaluatorID != nil {
		fb = fb.Eq("evaluator_id", *q.EvaluatorID)
	}

	rows := []models.Evaluation{}
	if _, err := fb.ExecuteToWithContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to list evaluations: %w", err)
	}

	r.logger.Debug("evaluations listed", zap.Int("count", len(rows)))
	return rows, nil
}

// Create inserts an evaluation and returns the created row
func (r *EvaluationRepository) Create(ctx context.Context, evaluation *models.Evaluation) (*models.Evaluation, error) {
	insert := evaluationInsert{
		ApplicantID: evaluation.ApplicantID,
		EvaluatorID: evaluation.EvaluatorID,
		Score:       evaluation.Score,
		Comments:    evaluation.Comments,
	}

	rows := []models.Evaluation{}
	_, err := r.client.Anon().From(evaluationsTable).
		Insert(insert, false, "", "representation", "").
		ExecuteToWithContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to create evaluation: %w", err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("row store returned no row for created evaluation")
	}

	r.logger.Debug("evaluation created",
		zap.String("id", rows[0].ID),
		zap.String("evaluator_id", rows[0].EvaluatorID))
	return &rows[0], nil
}
