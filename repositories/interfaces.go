package repositories

import (
	"context"
	"errors"

	"github.com/cictrix/hris-backend/models"
)

// ErrNoRows indicates that a single-row lookup or mutation matched nothing
var ErrNoRows = errors.New("no rows found")

// ApplicantQuery carries the row-level filter and pagination for a list
// query. Email, when set, narrows the result to rows owned by that email;
// the policy layer decides the filter, the repository only translates it.
type ApplicantQuery struct {
	Email *string
	Skip  int
	Limit int
}

// EvaluationQuery carries the row-level filters for an evaluation list
// query. EvaluatorID, when set, narrows to rows the evaluator created.
type EvaluationQuery struct {
	ApplicantID *string
	EvaluatorID *string
}

// ApplicantRepository handles applicant row-store operations
type ApplicantRepository interface {
	// List retrieves applicants matching the query
	List(ctx context.Context, q ApplicantQuery) ([]models.Applicant, error)

	// GetByID retrieves an applicant by id; ErrNoRows when absent
	GetByID(ctx context.Context, id string) (*models.Applicant, error)

	// Update applies a partial update and returns the updated row;
	// ErrNoRows when the id matched nothing
	Update(ctx context.Context, id string, patch *models.ApplicantUpdate) (*models.Applicant, error)
}

// EvaluationRepository handles evaluation row-store operations
type EvaluationRepository interface {
	// List retrieves evaluations matching the query
	List(ctx context.Context, q EvaluationQuery) ([]models.Evaluation, error)

	// Create inserts an evaluation and returns the created row
	Create(ctx context.Context, evaluation *models.Evaluation) (*models.Evaluation, error)
}
