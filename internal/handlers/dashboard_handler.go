package handlers

import (
	"net/http"

	"learnquest/internal/analytics"
	"learnquest/internal/service"
)

// DashboardHandler handles parent dashboard HTTP requests
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// ChildDashboard returns the aggregated dashboard for one child over the
// window query parameter
func (h *DashboardHandler) ChildDashboard(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid child id")
		return
	}

	window := analytics.ParseWindow(r.URL.Query().Get("window"))
	dashboard, err := h.dashboardService.Dashboard(r.Context(), id, window)
	if err != nil {
		respondWithStoreError(w, err, "Error building dashboard")
		return
	}
	respondWithJSON(w, http.StatusOK, dashboard)
}
