package handlers

import (
	"net/http"
	"strconv"

	"learnquest/internal/models"
	"learnquest/internal/service"
)

// LevelHandler handles level catalogue HTTP requests
type LevelHandler struct {
	levelService    *service.LevelService
	questionService *service.QuestionService
}

// NewLevelHandler creates a new level handler
func NewLevelHandler(levelService *service.LevelService, questionService *service.QuestionService) *LevelHandler {
	return &LevelHandler{levelService: levelService, questionService: questionService}
}

// ListLevels returns the level catalogue, optionally filtered by the
// subject query parameter
func (h *LevelHandler) ListLevels(w http.ResponseWriter, r *http.Request) {
	subject := models.Subject(r.URL.Query().Get("subject"))
	if subject != "" && !models.ValidSubject(subject) {
		respondWithError(w, http.StatusBadRequest, "subject must be math or reading")
		return
	}

	levels, err := h.levelService.ListLevels(r.Context(), subject)
	if err != nil {
		respondWithStoreError(w, err, "Error listing levels")
		return
	}
	respondWithJSON(w, http.StatusOK, levels)
}

// GetLevel returns one level
func (h *LevelHandler) GetLevel(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid level id")
		return
	}

	level, err := h.levelService.GetLevel(r.Context(), id)
	if err != nil {
		respondWithStoreError(w, err, "Error getting level")
		return
	}
	respondWithJSON(w, http.StatusOK, level)
}

// SetLock updates a level's lock status
func (h *LevelHandler) SetLock(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid level id")
		return
	}

	var req struct {
		IsLocked bool `json:"isLocked"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	level, err := h.levelService.SetLocked(r.Context(), id, req.IsLocked)
	if err != nil {
		respondWithStoreError(w, err, "Error updating level lock")
		return
	}
	respondWithJSON(w, http.StatusOK, level)
}

// LevelQuestions returns a randomized question session for one level.
// The limit query parameter caps the session size below the default.
func (h *LevelHandler) LevelQuestions(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid level id")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, err = strconv.Atoi(raw)
		if err != nil || limit <= 0 {
			respondWithError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
	}

	// The level must exist even if its question bank is empty
	if _, err := h.levelService.GetLevel(r.Context(), id); err != nil {
		respondWithStoreError(w, err, "Error getting level")
		return
	}

	questions, err := h.questionService.QuestionsForLevel(r.Context(), id, limit)
	if err != nil {
		respondWithStoreError(w, err, "Error getting level questions")
		return
	}
	respondWithJSON(w, http.StatusOK, questions)
}
