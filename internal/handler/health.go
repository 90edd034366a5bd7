package handler

import "net/http"

// handleHealth implements GET /healthz.
// Liveness only: it does not touch the database.
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
