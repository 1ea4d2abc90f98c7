package utils

import (
	"context"
	"math"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-03-07")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 7, 0, 0, 0, 0, time.UTC), d)

	d, err = ParseDate("2026-03-07T10:30:00+05:30")
	require.NoError(t, err)
	assert.Equal(t, time.Date(2026, 3, 7, 5, 0, 0, 0, time.UTC), d)

	_, err = ParseDate("07/03/2026")
	assert.Error(t, err)
}

func TestUserIDContext(t *testing.T) {
	_, ok := GetUserIDFromContext(context.Background())
	assert.False(t, ok)

	id := uuid.New()
	got, ok := GetUserIDFromContext(WithUserID(context.Background(), id))
	require.True(t, ok)
	assert.Equal(t, id, got)

	_, ok = GetUserIDFromContext(WithUserID(context.Background(), uuid.Nil))
	assert.False(t, ok)
}

func TestDecodeJSONRequest(t *testing.T) {
	var dst struct {
		Name string `json:"name"`
	}

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"name":"Asha"}`))
	require.NoError(t, DecodeJSONRequest(rec, req, &dst))
	assert.Equal(t, "Asha", dst.Name)

	rec = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/", strings.NewReader(""))
	require.Error(t, DecodeJSONRequest(rec, req, &dst))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "request body is empty")
}

func TestWriteJSONResponse(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSONResponse(rec, http.StatusCreated, map[string]float64{"total": 12.5})
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.JSONEq(t, `{"total":12.5}`, rec.Body.String())

	rec = httptest.NewRecorder()
	WriteJSONResponse(rec, http.StatusOK, map[string]float64{"total": math.Inf(1)})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Internal Server Error"}`, rec.Body.String())
}
