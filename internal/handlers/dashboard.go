package handlers

import (
	"net/http"

	"go.uber.org/zap"
)

// Tab - вкладка панели офиса
type Tab struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Path  string `json:"path"`
}

var dashboardTabs = []Tab{
	{Key: "cargo", Label: "Багаж", Path: "/"},
	{Key: "kassa", Label: "Касса", Path: "/kassa"},
	{Key: "payments", Label: "Платежи", Path: "/payments"},
	{Key: "transitions", Label: "Переводы", Path: "/transitions"},
	{Key: "calendar", Label: "Календарь", Path: "/calendar"},
}

type DashboardHandler struct {
	logger *zap.Logger
}

func NewDashboardHandler(logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{logger: logger}
}

// Tabs возвращает список вкладок панели
func (h *DashboardHandler) Tabs(w http.ResponseWriter, r *http.Request) {
	if err := writeJSON(w, http.StatusOK, dashboardTabs); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
