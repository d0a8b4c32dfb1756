package handlers

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

type MockReadinessChecker struct {
	mock.Mock
}

func (m *MockReadinessChecker) HealthCheck(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestHealthHandler_HandleRoot(t *testing.T) {
	handler := NewHealthHandler(new(MockReadinessChecker), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	handler.HandleRoot(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "CICTrix HRIS API is running")
}

func TestHealthHandler_HandleHealth(t *testing.T) {
	handler := NewHealthHandler(new(MockReadinessChecker), zap.NewNop())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()

	handler.HandleHealth(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "healthy")
}

func TestHealthHandler_HandleReadiness(t *testing.T) {
	t.Run("ready", func(t *testing.T) {
		checker := new(MockReadinessChecker)
		checker.On("HealthCheck", mock.Anything).Return(nil)
		handler := NewHealthHandler(checker, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		rec := httptest.NewRecorder()

		handler.HandleReadiness(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "ready")
		checker.AssertExpectations(t)
	})

	t.Run("row store unreachable", func(t *testing.T) {
		checker := new(MockReadinessChecker)
		checker.On("HealthCheck", mock.Anything).Return(errors.New("connection refused"))
		handler := NewHealthHandler(checker, zap.NewNop())

		req := httptest.NewRequest(http.MethodGet, "/health/ready", nil)
		rec := httptest.NewRecorder()

		handler.HandleReadiness(rec, req)

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		checker.AssertExpectations(t)
	})
}
