package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"spendwise-backend/internal/services"
)

func TestWriteServiceError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		body   string
	}{
		{"validation", &services.ValidationError{Field: "amount", Message: "must be greater than zero"}, http.StatusBadRequest, "amount: must be greater than zero"},
		{"duplicate email", fmt.Errorf("create user: %w", services.ErrDuplicateEmail), http.StatusBadRequest, "User already exists"},
		{"invalid credential", services.ErrInvalidCredential, http.StatusBadRequest, "Invalid credentials"},
		{"not found", fmt.Errorf("get user: %w", services.ErrNotFound), http.StatusNotFound, "Not found"},
		{"internal", errors.New("connection reset by peer"), http.StatusInternalServerError, "Internal Server Error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeServiceError(rec, httptest.NewRequest(http.MethodGet, "/x", nil), tt.err)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), tt.body)
			assert.NotContains(t, rec.Body.String(), "connection reset")
		})
	}
}

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) Ping(ctx context.Context) error { return f(ctx) }

func TestHealthHandler(t *testing.T) {
	h := NewHealthHandler(pingerFunc(func(context.Context) error { return nil }))

	rec := httptest.NewRecorder()
	h.HealthCheck(rec, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.JSONEq(t, `{"status":"OK"}`, rec.Body.String())

	rec = httptest.NewRecorder()
	h.ReadinessCheck(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusOK, rec.Code)

	down := NewHealthHandler(pingerFunc(func(context.Context) error { return errors.New("db down") }))
	rec = httptest.NewRecorder()
	down.ReadinessCheck(rec, httptest.NewRequest(http.MethodGet, "/readyz", nil))
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Contains(t, rec.Body.String(), "degraded")
}

func TestCurrentUserWithoutIdentity(t *testing.T) {
	rec := httptest.NewRecorder()
	_, ok := currentUser(rec, httptest.NewRequest(http.MethodGet, "/expenses", nil))
	assert.False(t, ok)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
