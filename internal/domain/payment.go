// Package domain contains the core data types for the Martı Takip API.
// This package has zero external dependencies beyond uuid and is imported by
// every other internal package (repo, service, handler).
package domain

import (
	"time"

	"github.com/google/uuid"
)

// PaymentType is the method a passenger paid with.
type PaymentType string

const (
	// PaymentCash is a cash payment handed over in the car.
	PaymentCash PaymentType = "cash"
	// PaymentIBAN is an electronic transfer to the driver's account.
	PaymentIBAN PaymentType = "iban"
)

// Valid reports whether t is one of the known payment types.
func (t PaymentType) Valid() bool {
	return t == PaymentCash || t == PaymentIBAN
}

// Payment represents a single per-passenger payment record.
// Amount must be positive. Hour is the hour-of-day at creation time, stored
// redundantly for fast bucketing; it is never recomputed on edit.
// User is the attribution display name, not a foreign key.
type Payment struct {
	ID        uuid.UUID   `json:"id"`
	Amount    float64     `json:"amount"`
	Type      PaymentType `json:"payment_type"`
	User      string      `json:"user"`
	Location  string      `json:"location"`
	Hour      int         `json:"hour"`
	CreatedAt time.Time   `json:"created_at"`
}

// PaymentEdit carries the only fields that may change after creation.
// Timestamp, attribution, and the hour bucket are immutable post-creation.
type PaymentEdit struct {
	Amount   float64     `json:"amount"`
	Type     PaymentType `json:"payment_type"`
	Location string      `json:"location"`
}
