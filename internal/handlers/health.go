package handlers

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const pingTimeout = 2 * time.Second

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

// BackendPinger проверяет доступность бэкенда офиса
type BackendPinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler обрабатывает health check запросы
type HealthHandler struct {
	db      Pinger
	backend BackendPinger
	logger  *zap.Logger
}

// NewHealthHandler создает новый HealthHandler. db может быть nil,
// если сессии хранятся в памяти.
func NewHealthHandler(db Pinger, backend BackendPinger, logger *zap.Logger) *HealthHandler {
	return &HealthHandler{
		db:      db,
		backend: backend,
		logger:  logger,
	}
}

// HealthResponse представляет ответ health check
type HealthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
	Backend  string `json:"backend"`
}

// Health возвращает статус приложения
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	response := HealthResponse{
		Status:   "ok",
		Database: "disabled",
		Backend:  "ok",
	}

	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if h.db != nil {
		response.Database = "ok"
		if err := h.db.Ping(ctx); err != nil {
			response.Status = "degraded"
			response.Database = "unavailable"
			h.logger.Warn("health check: database unavailable", zap.Error(err))
		}
	}

	// Бэкенд офиса только отображается в ответе, живость от него не зависит
	if h.backend != nil {
		if err := h.backend.Ping(ctx); err != nil {
			response.Backend = "unavailable"
			h.logger.Warn("health check: backend unavailable", zap.Error(err))
		}
	}

	status := http.StatusOK
	if response.Status != "ok" {
		status = http.StatusServiceUnavailable
	}
	if err := writeJSON(w, status, response); err != nil {
		h.logger.Error("failed to encode health response", zap.Error(err))
	}
}

// Ready возвращает готовность приложения принимать трафик:
// доступны хранилище сессий и бэкенд офиса
func (h *HealthHandler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if h.db != nil {
		if err := h.db.Ping(ctx); err != nil {
			h.logger.Warn("readiness check failed: database unavailable", zap.Error(err))
			http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	if h.backend != nil {
		if err := h.backend.Ping(ctx); err != nil {
			h.logger.Warn("readiness check failed: backend unavailable", zap.Error(err))
			http.Error(w, "Service Unavailable", http.StatusServiceUnavailable)
			return
		}
	}

	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
