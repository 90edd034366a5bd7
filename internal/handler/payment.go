package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/Fxloydd/marti-takip-api/internal/domain"
)

// createPaymentRequest is the body of POST /api/payments.
type createPaymentRequest struct {
	Amount   float64            `json:"amount"`
	Type     domain.PaymentType `json:"payment_type"`
	User     string             `json:"user"`
	Location string             `json:"location"`
}

// handlePaymentCreate implements POST /api/payments.
// Returns the authoritative persisted record so the client can replace its
// optimistic copy by id.
func (s *Server) handlePaymentCreate(w http.ResponseWriter, r *http.Request) {
	var req createPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	created, err := s.payments.Create(r.Context(), req.Amount, req.Type, req.User, req.Location)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

// handlePaymentGet implements GET /api/payments/{id}.
func (s *Server) handlePaymentGet(w http.ResponseWriter, r *http.Request) {
	id, ok := paymentID(w, r)
	if !ok {
		return
	}

	p, err := s.payments.GetByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// handlePaymentUpdate implements PUT /api/payments/{id}.
// Only amount, payment type, and location are editable; the timestamp, the
// attributed user, and the hour bucket stay as created.
func (s *Server) handlePaymentUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := paymentID(w, r)
	if !ok {
		return
	}

	var edit domain.PaymentEdit
	if err := json.NewDecoder(r.Body).Decode(&edit); err != nil {
		writeRequestError(w, "invalid request body")
		return
	}

	updated, err := s.payments.Update(r.Context(), id, edit)
	if err != nil {
		writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// handlePaymentDelete implements DELETE /api/payments/{id}.
func (s *Server) handlePaymentDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := paymentID(w, r)
	if !ok {
		return
	}

	if err := s.payments.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// paymentID parses the {id} path parameter, writing the error response on
// malformed input.
func paymentID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeRequestError(w, "invalid payment id")
		return uuid.Nil, false
	}
	return id, true
}
