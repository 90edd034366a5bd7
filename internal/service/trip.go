package service

import (
	"context"
	"fmt"

	"github.com/Fxloydd/marti-takip-api/internal/domain"
	"github.com/Fxloydd/marti-takip-api/internal/fuel"
	"github.com/Fxloydd/marti-takip-api/internal/repo"
	"github.com/Fxloydd/marti-takip-api/internal/tracker"
)

// PriceSource supplies the current per-liter petrol price.
// Satisfied by *fuel.PriceClient.
type PriceSource interface {
	Current(ctx context.Context) fuel.Quote
}

// TripService turns a finished tracking session into a persisted summary:
// it applies the vehicle's consumption rate and the petrol price to the
// tracked distance, and keeps the trip history.
type TripService struct {
	trips    repo.TripRepo
	settings repo.SettingsRepo
	prices   PriceSource
}

// NewTripService constructs a TripService backed by the provided repos and
// price source.
func NewTripService(trips repo.TripRepo, settings repo.SettingsRepo, prices PriceSource) *TripService {
	return &TripService{trips: trips, settings: settings, prices: prices}
}

// SaveFinished estimates fuel for a finished session and persists the
// summary. The manual price from the fuel settings wins over the live
// quote when set. Raw route coordinates are not persisted — only the
// aggregate reaches the repo.
func (s *TripService) SaveFinished(ctx context.Context, sum tracker.Summary) (domain.TripSummary, error) {
	fs, err := s.settings.FuelSettings(ctx)
	if err != nil {
		return domain.TripSummary{}, fmt.Errorf("service.TripService.SaveFinished: %w", err)
	}

	price := fs.Price
	if price <= 0 {
		price = s.prices.Current(ctx).Value
	}

	usage := fuel.Estimate(sum.DistanceKm, fs.ConsumptionPer100, price)

	saved, err := s.trips.SaveSummary(ctx, domain.TripSummary{
		StartTime:         sum.StartTime,
		EndTime:           sum.EndTime,
		DistanceKm:        sum.DistanceKm,
		DurationMinutes:   sum.DurationMinutes,
		FuelLiters:        usage.Liters,
		FuelCost:          usage.Cost,
		ConsumptionPer100: fs.ConsumptionPer100,
		FuelPrice:         price,
	})
	if err != nil {
		return domain.TripSummary{}, fmt.Errorf("service.TripService.SaveFinished: %w", err)
	}
	return saved, nil
}

// History returns the most recent trip summaries, newest first.
// Always returns a non-nil slice so callers can safely range over it.
func (s *TripService) History(ctx context.Context, limit int) ([]domain.TripSummary, error) {
	if limit < 1 {
		limit = 10
	}
	if limit > 100 {
		limit = 100
	}

	trips, err := s.trips.ListRecent(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("service.TripService.History: %w", err)
	}
	if trips == nil {
		return []domain.TripSummary{}, nil
	}
	return trips, nil
}

// FuelSettings returns the stored vehicle parameters.
func (s *TripService) FuelSettings(ctx context.Context) (domain.FuelSettings, error) {
	fs, err := s.settings.FuelSettings(ctx)
	if err != nil {
		return domain.FuelSettings{}, fmt.Errorf("service.TripService.FuelSettings: %w", err)
	}
	return fs, nil
}

// SetFuelSettings validates and stores the vehicle parameters.
// The consumption rate mirrors the UI slider range of 3–20 L/100km.
func (s *TripService) SetFuelSettings(ctx context.Context, fs domain.FuelSettings) error {
	if fs.ConsumptionPer100 < 3 || fs.ConsumptionPer100 > 20 {
		return fmt.Errorf("%w: consumption must be between 3 and 20 L/100km", domain.ErrValidation)
	}
	if fs.Price < 0 {
		return fmt.Errorf("%w: fuel price must not be negative", domain.ErrValidation)
	}
	if err := s.settings.SetFuelSettings(ctx, fs); err != nil {
		return fmt.Errorf("service.TripService.SetFuelSettings: %w", err)
	}
	return nil
}
