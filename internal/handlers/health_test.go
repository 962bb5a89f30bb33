package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPinger struct {
	err error
}

func (p stubPinger) Ping(context.Context) error { return p.err }

func TestHealthHandler_Health(t *testing.T) {
	t.Run("Memory store", func(t *testing.T) {
		handler := NewHealthHandler(nil, stubPinger{}, zap.NewNop())
		w := httptest.NewRecorder()

		handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		var resp HealthResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "disabled", resp.Database)
	})

	t.Run("Database down", func(t *testing.T) {
		handler := NewHealthHandler(stubPinger{err: assert.AnError}, stubPinger{}, zap.NewNop())
		w := httptest.NewRecorder()

		handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)

		var resp HealthResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "degraded", resp.Status)
		assert.Equal(t, "unavailable", resp.Database)
	})

	t.Run("Backend down keeps liveness", func(t *testing.T) {
		handler := NewHealthHandler(stubPinger{}, stubPinger{err: assert.AnError}, zap.NewNop())
		w := httptest.NewRecorder()

		handler.Health(w, httptest.NewRequest(http.MethodGet, "/health", nil))
		assert.Equal(t, http.StatusOK, w.Code)

		var resp HealthResponse
		require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
		assert.Equal(t, "ok", resp.Status)
		assert.Equal(t, "unavailable", resp.Backend)
	})
}

func TestHealthHandler_Ready(t *testing.T) {
	t.Run("Ready", func(t *testing.T) {
		handler := NewHealthHandler(stubPinger{}, nil, zap.NewNop())
		w := httptest.NewRecorder()

		handler.Ready(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "OK", w.Body.String())
	})

	t.Run("Database down", func(t *testing.T) {
		handler := NewHealthHandler(stubPinger{err: assert.AnError}, nil, zap.NewNop())
		w := httptest.NewRecorder()

		handler.Ready(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})

	t.Run("Backend down", func(t *testing.T) {
		handler := NewHealthHandler(nil, stubPinger{err: assert.AnError}, zap.NewNop())
		w := httptest.NewRecorder()

		handler.Ready(w, httptest.NewRequest(http.MethodGet, "/ready", nil))
		assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	})
}
