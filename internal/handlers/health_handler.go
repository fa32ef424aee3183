package handlers

import "net/http"

// Healthz reports process liveness for load balancers and uptime checks
func Healthz(w http.ResponseWriter, r *http.Request) {
	respondWithJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
