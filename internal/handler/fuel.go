package handler

import (
	"encoding/json"
	"net/http"

	"github.com/Fxloydd/marti-takip-api/internal/domain"
)

// handleFuelPrice implements GET /api/fuel-price.
// Serves the cached quote; ?refresh=1 forces a fetch past the TTL.
// Never fails: fetch errors degrade to the fallback price, flagged on the
// quote body.
func (s *Server) handleFuelPrice(w http.ResponseWriter, r *http.Request) {
	var quote any
	if r.URL.Query().Get("refresh") == "1" {
		quote = s.prices.Refresh(r.Context())
	} else {
		quote = s.prices.Current(r.Context())
	}
	writeJSON(w, http.StatusOK, quote)
}

// handleFuelSettingsGet implements GET /api/fuel-settings.
func (s *Server) handleFuelSettingsGet(w http.ResponseWriter, r *http.Request) {
	fs, err := s.trips.FuelSettings(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, fs)
}

// handleFuelSettingsSet implements PUT /api/fuel-settings.
func (s *Server) handleFuelSettingsSet(w http.ResponseWriter, r *http.Request) {
	var fs domain.FuelSettings
	if err := json.NewDecoder(r.Body).Decode(&fs); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	if err := s.trips.SetFuelSettings(r.Context(), fs); err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, fs)
}
