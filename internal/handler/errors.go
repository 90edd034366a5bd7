package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/Fxloydd/marti-takip-api/internal/domain"
	"github.com/Fxloydd/marti-takip-api/internal/tracker"
)

// errorResponse is the JSON envelope for every non-2xx response.
type errorResponse struct {
	Error errorDetail `json:"error"`
}

type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// writeJSON encodes v as the response body with the given status.
// Encoding failures are logged, not surfaced — the status line is already out.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("response encode failed", "error", err)
	}
}

// writeError maps a service error onto the HTTP error envelope:
//
//	domain.ErrNotFound            → 404 not_found
//	domain.ErrValidation          → 422 validation_error
//	tracker state-machine errors  → 409 conflict
//	anything else                 → 500 internal_error (logged, detail withheld)
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse{
			Error: errorDetail{Code: "not_found", Message: unwrapMessage(err)},
		})
	case errors.Is(err, domain.ErrValidation):
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error: errorDetail{Code: "validation_error", Message: unwrapMessage(err)},
		})
	case isTrackerConflict(err):
		writeJSON(w, http.StatusConflict, errorResponse{
			Error: errorDetail{Code: "conflict", Message: unwrapMessage(err)},
		})
	default:
		slog.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
		writeJSON(w, http.StatusInternalServerError, errorResponse{
			Error: errorDetail{Code: "internal_error", Message: "internal server error"},
		})
	}
}

// writeRequestError rejects a request before it reaches the service layer
// (missing or malformed body, bad query parameter).
func writeRequestError(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
		Error: errorDetail{Code: "validation_error", Message: message},
	})
}

// isTrackerConflict reports whether err is an invalid session transition.
func isTrackerConflict(err error) bool {
	return errors.Is(err, tracker.ErrAlreadyTracking) ||
		errors.Is(err, tracker.ErrNotTracking) ||
		errors.Is(err, tracker.ErrAlreadyPaused) ||
		errors.Is(err, tracker.ErrNotPaused)
}

// unwrapMessage extracts the human-readable part from a wrapped sentinel error.
// e.g. "service.PaymentService.Create: validation error: amount must be
// positive" → "amount must be positive".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	if i := strings.LastIndex(msg, domain.ErrValidation.Error()+": "); i >= 0 {
		return msg[i+len(domain.ErrValidation.Error())+2:]
	}
	if i := strings.LastIndex(msg, domain.ErrNotFound.Error()); i >= 0 {
		return msg[i:]
	}
	return msg
}
