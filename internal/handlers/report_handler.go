package handlers

import (
	"net/http"

	"learnquest/internal/service"
	"learnquest/internal/validation"
)

// ReportHandler handles on-demand progress report emails
type ReportHandler struct {
	reportService *service.ReportService
}

// NewReportHandler creates a new report handler
func NewReportHandler(reportService *service.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// SendWeeklyReport emails a child's weekly digest to the given parent
// address
func (h *ReportHandler) SendWeeklyReport(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid child id")
		return
	}

	if !h.reportService.IsEnabled() {
		respondWithError(w, http.StatusServiceUnavailable, "report emails are not configured")
		return
	}

	var req struct {
		Email string `json:"email"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := validation.Email(req.Email); err != nil {
		respondWithError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.reportService.SendWeeklyReport(r.Context(), req.Email, id); err != nil {
		respondWithStoreError(w, err, "Error sending weekly report")
		return
	}
	respondWithJSON(w, http.StatusAccepted, map[string]string{"status": "sent"})
}
