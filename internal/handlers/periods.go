package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/avc/cargo-office/internal/domain"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// Сообщения об ошибках операций с периодами
const (
	msgListPeriodsFailed  = "Не удалось загрузить периоды"
	msgGetPeriodFailed    = "Не удалось загрузить период"
	msgCreatePeriodFailed = "Не удалось создать период"
	msgUpdatePeriodFailed = "Не удалось обновить период"
	msgDeletePeriodFailed = "Не удалось удалить период"
)

type PeriodsHandler struct {
	periodService domain.PeriodService
	logger        *zap.Logger
}

func NewPeriodsHandler(periodService domain.PeriodService, logger *zap.Logger) *PeriodsHandler {
	return &PeriodsHandler{
		periodService: periodService,
		logger:        logger,
	}
}

type periodRequest struct {
	Name string `json:"period_name"`
}

type deleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ListPeriods возвращает периоды; при ошибке ответ помечается как повторяемый
func (h *PeriodsHandler) ListPeriods(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := GetSessionID(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, msgNotAuthorized)
		return
	}

	periods, err := h.periodService.ListPeriods(r.Context(), sessionID)
	if err != nil {
		status, resp := describeError(err, msgListPeriodsFailed)
		if status >= http.StatusInternalServerError {
			h.logger.Error("failed to list periods", zap.Error(err), zap.String("session_id", sessionID))
		}
		resp.Retryable = true
		_ = writeJSON(w, status, resp)
		return
	}

	if err := writeJSON(w, http.StatusOK, periods); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *PeriodsHandler) GetPeriod(w http.ResponseWriter, r *http.Request) {
	sessionID, id, ok := h.target(w, r)
	if !ok {
		return
	}

	period, err := h.periodService.GetPeriod(r.Context(), sessionID, id)
	if err != nil {
		writeServiceError(w, h.logger, err, msgGetPeriodFailed, zap.Int64("period_id", id))
		return
	}

	if err := writeJSON(w, http.StatusOK, period); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *PeriodsHandler) CreatePeriod(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := GetSessionID(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, msgNotAuthorized)
		return
	}

	var req periodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, msgBadRequest)
		return
	}

	period, err := h.periodService.CreatePeriod(r.Context(), sessionID, req.Name)
	if err != nil {
		writeServiceError(w, h.logger, err, msgCreatePeriodFailed, zap.String("period_name", req.Name))
		return
	}

	if err := writeJSON(w, http.StatusCreated, period); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *PeriodsHandler) UpdatePeriod(w http.ResponseWriter, r *http.Request) {
	sessionID, id, ok := h.target(w, r)
	if !ok {
		return
	}

	var req periodRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeDetail(w, http.StatusBadRequest, msgBadRequest)
		return
	}

	period, err := h.periodService.UpdatePeriod(r.Context(), sessionID, id, req.Name)
	if err != nil {
		writeServiceError(w, h.logger, err, msgUpdatePeriodFailed, zap.Int64("period_id", id))
		return
	}

	if err := writeJSON(w, http.StatusOK, period); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

func (h *PeriodsHandler) DeletePeriod(w http.ResponseWriter, r *http.Request) {
	sessionID, id, ok := h.target(w, r)
	if !ok {
		return
	}

	if err := h.periodService.DeletePeriod(r.Context(), sessionID, id); err != nil {
		writeServiceError(w, h.logger, err, msgDeletePeriodFailed, zap.Int64("period_id", id))
		return
	}

	if err := writeJSON(w, http.StatusOK, deleteResponse{Success: true, Message: msgPeriodDeleted}); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// target извлекает сессию и id периода из запроса; при ошибке ответ уже записан
func (h *PeriodsHandler) target(w http.ResponseWriter, r *http.Request) (string, int64, bool) {
	sessionID, ok := GetSessionID(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, msgNotAuthorized)
		return "", 0, false
	}

	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil || id <= 0 {
		writeDetail(w, http.StatusBadRequest, msgBadRequest)
		return "", 0, false
	}
	return sessionID, id, true
}
