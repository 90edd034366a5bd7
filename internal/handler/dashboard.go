package handler

import "net/http"

// handleDashboard implements GET /api/dashboard.
// The optional ?user= parameter switches from the combined (team) view to a
// single driver's personal view.
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	dash, err := s.dashboard.Get(r.Context(), r.URL.Query().Get("user"))
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, dash)
}
