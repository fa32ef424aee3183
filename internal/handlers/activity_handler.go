package handlers

import (
	"net/http"

	"learnquest/internal/analytics"
	"learnquest/internal/models"
	"learnquest/internal/service"
)

// ActivityHandler handles completed-session HTTP requests
type ActivityHandler struct {
	activityService *service.ActivityService
}

// NewActivityHandler creates a new activity handler
func NewActivityHandler(activityService *service.ActivityService) *ActivityHandler {
	return &ActivityHandler{activityService: activityService}
}

// RecordActivity stores one completed session and applies its side
// effects (stars, level unlocks)
func (h *ActivityHandler) RecordActivity(w http.ResponseWriter, r *http.Request) {
	var activity models.Activity
	if err := decodeJSON(r, &activity); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.activityService.RecordActivity(r.Context(), &activity)
	if err != nil {
		respondWithStoreError(w, err, "Error recording activity")
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// ChildActivities returns a child's activities within the window query
// parameter (today, week, month or all; week when absent)
func (h *ActivityHandler) ChildActivities(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid child id")
		return
	}

	window := analytics.ParseWindow(r.URL.Query().Get("window"))
	activities, err := h.activityService.ActivitiesForChild(r.Context(), id, window)
	if err != nil {
		respondWithStoreError(w, err, "Error listing activities")
		return
	}
	respondWithJSON(w, http.StatusOK, activities)
}

// DeleteActivity removes one recorded session
func (h *ActivityHandler) DeleteActivity(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid activity id")
		return
	}

	if err := h.activityService.DeleteActivity(r.Context(), id); err != nil {
		respondWithStoreError(w, err, "Error deleting activity")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
