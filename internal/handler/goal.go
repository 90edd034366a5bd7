package handler

import (
	"encoding/json"
	"net/http"
)

// goalResponse is the body of GET /api/goal. The weekly target is derived,
// never stored, so it is computed here for the client's convenience.
type goalResponse struct {
	DailyTarget  float64 `json:"daily_target"`
	WeeklyTarget float64 `json:"weekly_target"`
}

// setGoalRequest is the body of PUT /api/goal.
type setGoalRequest struct {
	DailyTarget float64 `json:"daily_target"`
}

// handleGoalGet implements GET /api/goal.
func (s *Server) handleGoalGet(w http.ResponseWriter, r *http.Request) {
	target, err := s.goals.Get(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, goalResponse{DailyTarget: target, WeeklyTarget: target * 7})
}

// handleGoalSet implements PUT /api/goal.
func (s *Server) handleGoalSet(w http.ResponseWriter, r *http.Request) {
	var req setGoalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	if err := s.goals.Set(r.Context(), req.DailyTarget); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, goalResponse{DailyTarget: req.DailyTarget, WeeklyTarget: req.DailyTarget * 7})
}
