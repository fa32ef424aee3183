package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"learnquest/internal/models"
	"learnquest/internal/store"
)

// errorResponse is the JSON error envelope returned by every endpoint
type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func respondWithJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if payload == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.Printf("Error encoding response: %v", err)
	}
}

func respondWithError(w http.ResponseWriter, status int, userMsg string) {
	respondWithJSON(w, status, errorResponse{Error: userMsg})
}

// respondWithStoreError maps service and store errors onto HTTP statuses:
// missing records become 404, rejected writes 422 with per-field details,
// and an unreachable backend 503
func respondWithStoreError(w http.ResponseWriter, err error, logMsg string) {
	var modelErr *models.ValidationError
	var validationErr *store.ValidationError
	switch {
	case errors.Is(err, store.ErrNotFound):
		respondWithError(w, http.StatusNotFound, "not found")
	case errors.As(err, &modelErr):
		respondWithError(w, http.StatusUnprocessableEntity, modelErr.Error())
	case errors.As(err, &validationErr):
		fields := make(map[string]string, len(validationErr.Fields))
		for _, f := range validationErr.Fields {
			fields[f.Field] = f.Message
		}
		respondWithJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:  "validation failed",
			Fields: fields,
		})
	case errors.Is(err, store.ErrUnavailable):
		log.Printf("%s: %v", logMsg, err)
		w.Header().Set("Retry-After", "5")
		respondWithError(w, http.StatusServiceUnavailable, "record store unavailable, try again shortly")
	default:
		log.Printf("%s: %v", logMsg, err)
		respondWithError(w, http.StatusInternalServerError, "internal server error")
	}
}

// decodeJSON parses a request body, rejecting unknown fields so typos in
// client payloads fail loudly instead of silently dropping data
func decodeJSON(r *http.Request, dst interface{}) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(dst)
}

// pathID parses the {id} path segment of a request
func pathID(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}
