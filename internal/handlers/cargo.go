package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/avc/cargo-office/internal/grid"
	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

const exportFileName = "cargo.xlsx"

// SheetSource отдает рабочую таблицу сессии
type SheetSource interface {
	Sheet(ctx context.Context, sessionID string) (*grid.Sheet, error)
}

type CargoHandler struct {
	sheets SheetSource
	logger *zap.Logger
}

func NewCargoHandler(sheets SheetSource, logger *zap.Logger) *CargoHandler {
	return &CargoHandler{
		sheets: sheets,
		logger: logger,
	}
}

type rowsResponse struct {
	Rows  []grid.Row `json:"rows"`
	Total int        `json:"total"`
}

type insertRowRequest struct {
	At *int `json:"at"`
}

type editRowRequest struct {
	Changes []grid.CellChange `json:"changes"`
}

// Columns возвращает описание колонок таблицы
func (h *CargoHandler) Columns(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, grid.Columns()); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// ListRows возвращает отрисованные строки, отфильтрованные по q
func (h *CargoHandler) ListRows(w http.ResponseWriter, r *http.Request) {
	sheet, ok := h.sheet(w, r)
	if !ok {
		return
	}

	resp := rowsResponse{Rows: sheet.View(r.URL.Query().Get("q")), Total: sheet.Len()}
	if err := writeJSON(w, http.StatusOK, resp); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// InsertRow добавляет пустую строку; без позиции строка уходит в конец
func (h *CargoHandler) InsertRow(w http.ResponseWriter, r *http.Request) {
	sheet, ok := h.sheet(w, r)
	if !ok {
		return
	}

	var req insertRowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeDetail(w, http.StatusBadRequest, msgBadRequest)
		return
	}

	at := -1
	if req.At != nil {
		at = *req.At
	}

	if err := writeJSON(w, http.StatusCreated, sheet.InsertRow(at)); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// EditRow применяет правки ячеек одной строки
func (h *CargoHandler) EditRow(w http.ResponseWriter, r *http.Request) {
	sheet, ok := h.sheet(w, r)
	if !ok {
		return
	}

	var req editRowRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || len(req.Changes) == 0 {
		writeDetail(w, http.StatusBadRequest, msgBadRequest)
		return
	}

	result, err := sheet.Edit(chi.URLParam(r, "rowID"), req.Changes)
	if err != nil {
		if errors.Is(err, grid.ErrRowNotFound) {
			writeDetail(w, http.StatusNotFound, msgRowNotFound)
			return
		}
		h.logger.Error("failed to edit row", zap.Error(err))
		writeDetail(w, http.StatusInternalServerError, msgInternal)
		return
	}

	status := http.StatusOK
	if len(result.Rejected) == len(req.Changes) {
		status = http.StatusUnprocessableEntity
	}
	if err := writeJSON(w, status, result); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}

// DeleteRow удаляет строку
func (h *CargoHandler) DeleteRow(w http.ResponseWriter, r *http.Request) {
	sheet, ok := h.sheet(w, r)
	if !ok {
		return
	}

	if err := sheet.RemoveRow(chi.URLParam(r, "rowID")); err != nil {
		if errors.Is(err, grid.ErrRowNotFound) {
			writeDetail(w, http.StatusNotFound, msgRowNotFound)
			return
		}
		h.logger.Error("failed to remove row", zap.Error(err))
		writeDetail(w, http.StatusInternalServerError, msgInternal)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Export выгружает видимые строки в файл Excel
func (h *CargoHandler) Export(w http.ResponseWriter, r *http.Request) {
	sheet, ok := h.sheet(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := grid.WriteXLSX(&buf, sheet.Snapshot(r.URL.Query().Get("q"))); err != nil {
		h.logger.Error("failed to export sheet", zap.Error(err))
		writeDetail(w, http.StatusInternalServerError, msgExportFailed)
		return
	}

	w.Header().Set("Content-Type", grid.ExportContentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+exportFileName+`"`)
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("failed to write export", zap.Error(err))
	}
}

// sheet находит таблицу текущей сессии; при ошибке ответ уже записан
func (h *CargoHandler) sheet(w http.ResponseWriter, r *http.Request) (*grid.Sheet, bool) {
	sessionID, ok := GetSessionID(r.Context())
	if !ok {
		writeDetail(w, http.StatusUnauthorized, msgNotAuthorized)
		return nil, false
	}

	sheet, err := h.sheets.Sheet(r.Context(), sessionID)
	if err != nil {
		writeServiceError(w, h.logger, err, msgInternal, zap.String("session_id", sessionID))
		return nil, false
	}
	return sheet, true
}
