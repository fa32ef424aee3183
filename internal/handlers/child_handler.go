package handlers

import (
	"net/http"

	"learnquest/internal/models"
	"learnquest/internal/service"
)

// ChildHandler handles child profile HTTP requests
type ChildHandler struct {
	childService *service.ChildService
}

// NewChildHandler creates a new child handler
func NewChildHandler(childService *service.ChildService) *ChildHandler {
	return &ChildHandler{childService: childService}
}

// ListChildren returns every child profile
func (h *ChildHandler) ListChildren(w http.ResponseWriter, r *http.Request) {
	children, err := h.childService.ListChildren(r.Context())
	if err != nil {
		respondWithStoreError(w, err, "Error listing children")
		return
	}
	respondWithJSON(w, http.StatusOK, children)
}

// GetChild returns one child profile
func (h *ChildHandler) GetChild(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid child id")
		return
	}

	child, err := h.childService.GetChild(r.Context(), id)
	if err != nil {
		respondWithStoreError(w, err, "Error getting child")
		return
	}
	respondWithJSON(w, http.StatusOK, child)
}

// CreateChild creates a new child profile
func (h *ChildHandler) CreateChild(w http.ResponseWriter, r *http.Request) {
	var child models.Child
	if err := decodeJSON(r, &child); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := h.childService.CreateChild(r.Context(), &child)
	if err != nil {
		respondWithStoreError(w, err, "Error creating child")
		return
	}
	respondWithJSON(w, http.StatusCreated, created)
}

// UpdateChild overwrites an existing child profile
func (h *ChildHandler) UpdateChild(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid child id")
		return
	}

	var child models.Child
	if err := decodeJSON(r, &child); err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	child.ID = id

	updated, err := h.childService.UpdateChild(r.Context(), &child)
	if err != nil {
		respondWithStoreError(w, err, "Error updating child")
		return
	}
	respondWithJSON(w, http.StatusOK, updated)
}

// DeleteChild removes a child profile
func (h *ChildHandler) DeleteChild(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		respondWithError(w, http.StatusBadRequest, "invalid child id")
		return
	}

	if err := h.childService.DeleteChild(r.Context(), id); err != nil {
		respondWithStoreError(w, err, "Error deleting child")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
