package health

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHandleStatus(t *testing.T) {
	router := chi.NewRouter()
	New().Register(router)

	req := httptest.NewRequest(http.MethodGet, "/health/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp StatusResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ok", resp.Status)
}

func TestHandleReadiness(t *testing.T) {
	h := New()
	h.RegisterCheck("database", func() error { return nil })
	h.RegisterCheck("redis", func() error { return nil })

	router := chi.NewRouter()
	h.Register(router)

	req := httptest.NewRequest(http.MethodGet, "/health/ready/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp ReadinessResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "ready", resp.Status)
	assert.Equal(t, "up", resp.Checks["database"])
}

func TestHandleReadiness_DependencyDown(t *testing.T) {
	h := New()
	h.RegisterCheck("database", func() error { return errors.New("connection refused") })

	router := chi.NewRouter()
	h.Register(router)

	req := httptest.NewRequest(http.MethodGet, "/health/ready/", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusServiceUnavailable, rec.Code)
	var resp ReadinessResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Equal(t, "not_ready", resp.Status)
	assert.Contains(t, resp.Checks["database"], "down")
}
