package handlers

import (
	"net/http"

	"learnquest/internal/models"
	"learnquest/internal/service"
)

// ProgressHandler handles skill mastery HTTP requests
type ProgressHandler struct {
	progressService *service.ProgressService
}

// NewProgressHandler creates a new progress handler
func NewProgressHandler(progressService *service.ProgressService) *ProgressHandler {
	return &ProgressHandler{progressService: progressService}
}

// RecordProgress upserts one skill mastery record
func (h *ProgressHandler) RecordProgress(w http.ResponseWriter, r *http.Request) {
	var req struct {
		ChildID      int64          `json:"childId"`
		Subject      models.Subject `json:"subject"`
		SkillArea    string         `json:"skillArea"`
		MasteryLevel float64        `json:"masteryLevel"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	record, err := h.progressService.RecordProgress(r.Context(), req.ChildID, req.Subject, req.SkillArea, req.MasteryLevel)
	if err != nil {
		respondWithStoreError(w, err, "Error recording progress")
		return
	}
	respondWithJSON(w, http.StatusOK, record)
}

// ChildProgress returns a child's mastery records, optionally narrowed to
// the subject query parameter
func (h *ProgressHandler) ChildProgress(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid child id")
		return
	}

	subject := models.Subject(r.URL.Query().Get("subject"))
	if subject != "" && !models.ValidSubject(subject) {
		respondWithError(w, http.StatusBadRequest, "subject must be math or reading")
		return
	}

	var records []models.Progress
	if subject == "" {
		records, err = h.progressService.ProgressForChild(r.Context(), id)
	} else {
		records, err = h.progressService.ProgressForSubject(r.Context(), id, subject)
	}
	if err != nil {
		respondWithStoreError(w, err, "Error listing progress")
		return
	}
	respondWithJSON(w, http.StatusOK, records)
}
