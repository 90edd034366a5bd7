package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/Fxloydd/marti-takip-api/internal/tracker"
)

// trackerStateResponse is the live session snapshot plus the derived
// elapsed time, the body of GET /api/trip.
type trackerStateResponse struct {
	tracker.State
	ElapsedMinutes float64 `json:"elapsed_minutes"`
}

// positionRequest is the body of POST /api/trip/position: one device
// reading, or a positioning failure when Cause is set.
type positionRequest struct {
	Lat     float64   `json:"lat"`
	Lng     float64   `json:"lng"`
	SpeedMS float64   `json:"speed_ms"`
	At      time.Time `json:"timestamp"`
	Cause   string    `json:"cause,omitempty"`
	Message string    `json:"message,omitempty"`
}

// handleTripState implements GET /api/trip.
func (s *Server) handleTripState(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, trackerStateResponse{
		State:          s.session.State(),
		ElapsedMinutes: s.session.ElapsedMinutes(),
	})
}

// handleTripStart implements POST /api/trip/start.
func (s *Server) handleTripStart(w http.ResponseWriter, r *http.Request) {
	if err := s.session.Start(); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.session.State())
}

// handleTripPause implements POST /api/trip/pause.
func (s *Server) handleTripPause(w http.ResponseWriter, r *http.Request) {
	if err := s.session.Pause(); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.session.State())
}

// handleTripResume implements POST /api/trip/resume.
func (s *Server) handleTripResume(w http.ResponseWriter, r *http.Request) {
	if err := s.session.Resume(); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, s.session.State())
}

// handleTripFinish implements POST /api/trip/finish.
// Ends the session, estimates fuel, persists the summary, and returns the
// saved record. The route lives only in this response — it is never stored.
func (s *Server) handleTripFinish(w http.ResponseWriter, r *http.Request) {
	sum, err := s.session.Finish()
	if err != nil {
		writeError(w, r, err)
		return
	}

	saved, err := s.trips.SaveFinished(r.Context(), sum)
	if err != nil {
		writeError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Trip  any `json:"trip"`
		Route any `json:"route"`
	}{Trip: saved, Route: sum.Route})
}

// handleTripPosition implements POST /api/trip/position.
// The device posts its readings here; a body with a cause reports a
// positioning failure instead of a fix. Readings posted while no session
// is live are dropped, reported via the "accepted" flag.
func (s *Server) handleTripPosition(w http.ResponseWriter, r *http.Request) {
	var req positionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	var accepted bool
	if req.Cause != "" {
		accepted = s.feed.Fail(tracker.WatchError{
			Cause:   tracker.Cause(req.Cause),
			Message: req.Message,
		})
	} else {
		accepted = s.feed.Push(tracker.Sample{
			Lat:     req.Lat,
			Lng:     req.Lng,
			SpeedMS: req.SpeedMS,
			At:      req.At,
		})
	}

	writeJSON(w, http.StatusAccepted, map[string]bool{"accepted": accepted})
}

// handleTripHistory implements GET /api/trips.
// Supports ?limit= (default 10, max 100).
func (s *Server) handleTripHistory(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			writeRequestError(w, "invalid limit")
			return
		}
		limit = n
	}

	trips, err := s.trips.History(r.Context(), limit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, trips)
}
