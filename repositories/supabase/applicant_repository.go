package supabase

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/cictrix/hris-backend/models"
	"github.com/cictrix/hris-backend/repositories"
)

const applicantsTable = "applicants"

// ApplicantRepository implements repositories.ApplicantRepository against
// the PostgREST row store
type ApplicantRepository struct {
	client *Client
	logger *zap.Logger
}

// NewApplicantRepository creates a new applicant repository
func NewApplicantRepository(client *Client, logger *zap.Logger) repositories.ApplicantRepository {
	return &ApplicantRepository{
		client: client,
		logger: logger,
	}
}

// List retrieves applicants matching the query. The ownership filter and
// pagination are pushed into the row-store query itself.
func (r *ApplicantRepository) List(ctx context.Context, q repositories.ApplicantQuery) ([]models.Applicant, error) {
	fb := r.client.Anon().From(applicantsTable).Select("*", "", false)

	if q.Email != nil {
		fb = fb.Eq("email", *q.Email)
	}
	fb = fb.Range(q.Skip, q.Skip+q.Limit-1, "")

	rows := []models.Applicant{}
	if _, err := fb.ExecuteToWithContext(ctx, &rows); err != nil {
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}

	r.logger.Debug("applicants listed", zap.Int("count", len(rows)))
	return rows, nil
}

// GetByID retrieves an applicant by id
func (r *ApplicantRepository) GetByID(ctx context.Context, id string) (*models.Applicant, error) {
	rows := []models.Applicant{}
	_, err := r.client.Anon().From(applicantsTable).
		Select("*", "", false).
		Eq("id", id).
		ExecuteToWithContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to get applicant: %w", err)
	}
	if len(rows) == 0 {
		return nil, repositories.ErrNoRows
	}

	return &rows[0], nil
}

// Update applies a partial update and returns the updated row. Fields absent
// from the patch are omitted from the request body and stay untouched.
func (r *ApplicantRepository) Update(ctx context.Context, id string, patch *models.ApplicantUpdate) (*models.Applicant, error) {
	rows := []models.Applicant{}
	_, err := r.client.Anon().From(applicantsTable).
		Update(patch, "representation", "").
		Eq("id", id).
		ExecuteToWithContext(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to update applicant: %w", err)
	}
	if len(rows) == 0 {
		return nil, repositories.ErrNoRows
	}

	r.logger.Debug("applicant updated", zap.String("id", id))
	return &rows[0], nil
}
