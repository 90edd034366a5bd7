package domain

import (
	"time"

	"github.com/google/uuid"
)

// TripSummary is the persisted result of one finished GPS tracking session.
// Only the aggregate survives a trip — raw coordinates are shown live and
// then discarded, never stored.
type TripSummary struct {
	ID                uuid.UUID `json:"id"`
	StartTime         time.Time `json:"start_time"`
	EndTime           time.Time `json:"end_time"`
	DistanceKm        float64   `json:"total_distance_km"`
	DurationMinutes   float64   `json:"duration_minutes"`
	FuelLiters        float64   `json:"fuel_used_liters"`
	FuelCost          float64   `json:"fuel_cost"`
	ConsumptionPer100 float64   `json:"consumption_per_100km"`
	FuelPrice         float64   `json:"fuel_price"` // price per liter at time of trip
	CreatedAt         time.Time `json:"created_at"`
}

// FuelSettings holds the vehicle parameters used to turn distance into cost.
// Price is a manual per-liter override; 0 means "use the live quote".
type FuelSettings struct {
	ConsumptionPer100 float64 `json:"consumption_per_100km"`
	Price             float64 `json:"fuel_price"`
}
