package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Fxloydd/marti-takip-api/internal/domain"
)

// TripRepo persists finished trip summaries. Raw coordinates never reach
// this layer — only the aggregate survives a trip.
type TripRepo interface {
	// SaveSummary inserts a finished trip summary and returns the persisted
	// record (with DB-generated id and created_at populated).
	SaveSummary(ctx context.Context, s domain.TripSummary) (domain.TripSummary, error)

	// ListRecent returns the most recent trip summaries, newest first.
	ListRecent(ctx context.Context, limit int) ([]domain.TripSummary, error)
}

type pgTripRepo struct {
	db db
}

// NewTripRepo constructs a TripRepo backed by the provided db connection.
func NewTripRepo(db db) TripRepo {
	return &pgTripRepo{db: db}
}

const tripColumns = `id, start_time, end_time, total_distance_km, duration_minutes,
		fuel_used_liters, fuel_cost, consumption_per_100km, fuel_price, created_at`

func (r *pgTripRepo) SaveSummary(ctx context.Context, s domain.TripSummary) (domain.TripSummary, error) {
	const q = `
		INSERT INTO trip_history (start_time, end_time, total_distance_km, duration_minutes,
		                          fuel_used_liters, fuel_cost, consumption_per_100km, fuel_price)
		VALUES (@start_time, @end_time, @total_distance_km, @duration_minutes,
		        @fuel_used_liters, @fuel_cost, @consumption_per_100km, @fuel_price)
		RETURNING ` + tripColumns

	args := pgx.NamedArgs{
		"start_time":            s.StartTime,
		"end_time":              s.EndTime,
		"total_distance_km":     s.DistanceKm,
		"duration_minutes":      s.DurationMinutes,
		"fuel_used_liters":      s.FuelLiters,
		"fuel_cost":             s.FuelCost,
		"consumption_per_100km": s.ConsumptionPer100,
		"fuel_price":            s.FuelPrice,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanTrip(row)
	if err != nil {
		return domain.TripSummary{}, fmt.Errorf("repo.TripRepo.SaveSummary: %w", err)
	}
	return result, nil
}

func (r *pgTripRepo) ListRecent(ctx context.Context, limit int) ([]domain.TripSummary, error) {
	const q = `
		SELECT ` + tripColumns + `
		FROM trip_history
		ORDER BY created_at DESC
		LIMIT @limit`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"limit": limit})
	if err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListRecent: %w", err)
	}
	defer rows.Close()

	var trips []domain.TripSummary
	for rows.Next() {
		t, err := scanTrip(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.TripRepo.ListRecent: scan: %w", err)
		}
		trips = append(trips, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.TripRepo.ListRecent: rows: %w", err)
	}

	return trips, nil
}

// scanTrip maps a single database row into a domain.TripSummary.
func scanTrip(s scanner) (domain.TripSummary, error) {
	var (
		t  domain.TripSummary
		id pgtype.UUID
	)

	err := s.Scan(&id, &t.StartTime, &t.EndTime, &t.DistanceKm, &t.DurationMinutes,
		&t.FuelLiters, &t.FuelCost, &t.ConsumptionPer100, &t.FuelPrice, &t.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.TripSummary{}, domain.ErrNotFound
		}
		return domain.TripSummary{}, err
	}

	t.ID = uuid.UUID(id.Bytes)
	return t, nil
}
