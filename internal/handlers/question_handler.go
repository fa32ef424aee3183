package handlers

import (
	"net/http"

	"learnquest/internal/service"
)

// QuestionHandler handles answer checking HTTP requests
type QuestionHandler struct {
	questionService *service.QuestionService
}

// NewQuestionHandler creates a new question handler
func NewQuestionHandler(questionService *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionService: questionService}
}

// CheckAnswer grades one submitted answer and returns the correct answer
// alongside the verdict so the front end can show it either way
func (h *QuestionHandler) CheckAnswer(w http.ResponseWriter, r *http.Request) {
	var req struct {
		QuestionID int64  `json:"questionId"`
		Answer     string `json:"answer"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.QuestionID <= 0 {
		respondWithError(w, http.StatusBadRequest, "questionId is required")
		return
	}

	correct, question, err := h.questionService.CheckAnswer(r.Context(), req.QuestionID, req.Answer)
	if err != nil {
		respondWithStoreError(w, err, "Error checking answer")
		return
	}

	respondWithJSON(w, http.StatusOK, map[string]interface{}{
		"correct":       correct,
		"correctAnswer": question.CorrectAnswer,
		"description":   question.Description,
	})
}
