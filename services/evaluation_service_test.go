package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/cictrix/hris-backend/models"
	"github.com/cictrix/hris-backend/repositories"
)

// MockEvaluationRepository is a mock implementation of repositories.EvaluationRepository
type MockEvaluationRepository struct {
	mock.Mock
}

func (m *MockEvaluationRepository) List(ctx context.Context, q repositories.EvaluationQuery) ([]models.Evaluation, error) {
	args := m.Called(ctx, q)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Evaluation), args.Error(1)
}

func (m *MockEvaluationRepository) Create(ctx context.Context, evaluation *models.Evaluation) (*models.Evaluation, error) {
	args := m.Called(ctx, evaluation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Evaluation), args.Error(1)
}

func rater() models.Principal {
	return models.Principal{UserID: "rater-1", Email: "rater@example.com", Role: models.RoleRater}
}

func TestEvaluationService_List_ManagerialUnfiltered(t *testing.T) {
	repo := new(MockEvaluationRepository)
	svc := NewEvaluationService(repo, zap.NewNop())

	want := []models.Evaluation{{ID: "e1", EvaluatorID: "other"}}
	repo.On("List", mock.Anything, repositories.EvaluationQuery{}).Return(want, nil)

	got, err := svc.List(context.Background(), admin(), nil)
	require.NoError(t, err)
	assert.Equal(t, want, got)
	repo.AssertExpectations(t)
}

func TestEvaluationService_List_RaterScopedToOwnRows(t *testing.T) {
	repo := new(MockEvaluationRepository)
	svc := NewEvaluationService(repo, zap.NewNop())

	repo.On("List", mock.Anything, mock.MatchedBy(func(q repositories.EvaluationQuery) bool {
		return q.EvaluatorID != nil && *q.EvaluatorID == "rater-1"
	})).Return([]models.Evaluation{{ID: "e1", EvaluatorID: "rater-1"}}, nil)

	got, err := svc.List(context.Background(), rater(), nil)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "rater-1", got[0].EvaluatorID)
	repo.AssertExpectations(t)
}

func TestEvaluationService_List_InterviewerScopedToOwnRows(t *testing.T) {
	repo := new(MockEvaluationRepository)
	svc := NewEvaluationService(repo, zap.NewNop())

	p := models.Principal{UserID: "iv-1", Email: "iv@example.com", Role: models.RoleInterviewer}
	repo.On("List", mock.Anything, mock.MatchedBy(func(q repositories.EvaluationQuery) bool {
		return q.EvaluatorID != nil && *q.EvaluatorID == "iv-1"
	})).Return([]models.Evaluation{}, nil)

	_, err := svc.List(context.Background(), p, nil)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestEvaluationService_List_ApplicantFilterPassedThrough(t *testing.T) {
	repo := new(MockEvaluationRepository)
	svc := NewEvaluationService(repo, zap.NewNop())

	applicantID := "a1"
	repo.On("List", mock.Anything, mock.MatchedBy(func(q repositories.EvaluationQuery) bool {
		return q.ApplicantID != nil && *q.ApplicantID == "a1" && q.EvaluatorID == nil
	})).Return([]models.Evaluation{}, nil)

	_, err := svc.List(context.Background(), admin(), &applicantID)
	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestEvaluationService_List_ForbiddenRoles(t *testing.T) {
	for _, role := range []models.Role{models.RoleApplicant, "GUEST"} {
		repo := new(MockEvaluationRepository)
		svc := NewEvaluationService(repo, zap.NewNop())

		p := models.Principal{UserID: "u", Email: "u@x.com", Role: role}
		_, err := svc.List(context.Background(), p, nil)
		assert.True(t, IsForbiddenError(err), "role %s", role)
		repo.AssertNotCalled(t, "List")
	}
}

func TestEvaluationService_Create_StampsEvaluator(t *testing.T) {
	repo := new(MockEvaluationRepository)
	svc := NewEvaluationService(repo, zap.NewNop())

	repo.On("Create", mock.Anything, mock.MatchedBy(func(e *models.Evaluation) bool {
		return e.EvaluatorID == "rater-1" && e.ApplicantID == "a1" && e.Score == 4.5
	})).Return(&models.Evaluation{ID: "e1", ApplicantID: "a1", EvaluatorID: "rater-1", Score: 4.5}, nil)

	// The request payload cannot carry an evaluator identity at all; the
	// service stamps the principal unconditionally.
	got, err := svc.Create(context.Background(), rater(), models.EvaluationCreate{
		ApplicantID: "a1",
		Score:       4.5,
	})
	require.NoError(t, err)
	assert.Equal(t, "rater-1", got.EvaluatorID)
	repo.AssertExpectations(t)
}

func TestEvaluationService_Create_ForbiddenRoles(t *testing.T) {
	for _, role := range []models.Role{models.RoleAdmin, models.RolePM, models.RoleApplicant, "GUEST"} {
		repo := new(MockEvaluationRepository)
		svc := NewEvaluationService(repo, zap.NewNop())

		p := models.Principal{UserID: "u", Email: "u@x.com", Role: role}
		_, err := svc.Create(context.Background(), p, models.EvaluationCreate{ApplicantID: "a1", Score: 1})
		assert.True(t, IsForbiddenError(err), "role %s", role)
		repo.AssertNotCalled(t, "Create")
	}
}

func TestEvaluationService_Create_RowStoreFailure(t *testing.T) {
	repo := new(MockEvaluationRepository)
	svc := NewEvaluationService(repo, zap.NewNop())

	repo.On("Create", mock.Anything, mock.Anything).Return(nil, assert.AnError)

	_, err := svc.Create(context.Background(), rater(), models.EvaluationCreate{ApplicantID: "a1", Score: 1})
	assert.True(t, IsInternalError(err))
}
