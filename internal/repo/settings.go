package repo

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/jackc/pgx/v5"

	"github.com/Fxloydd/marti-takip-api/internal/domain"
)

// defaultDailyGoal is served when no goal has ever been set.
const defaultDailyGoal = 3000

// SettingsRepo stores the process-wide daily goal and the vehicle fuel
// parameters. Both live in a key/value settings table.
type SettingsRepo interface {
	// DailyGoal returns the configured daily earnings target, or the default
	// when none has been stored yet.
	DailyGoal(ctx context.Context) (float64, error)

	// SetDailyGoal upserts the daily earnings target.
	SetDailyGoal(ctx context.Context, target float64) error

	// FuelSettings returns the stored vehicle parameters, with defaults for
	// anything never set (7.0 L/100km, no manual price).
	FuelSettings(ctx context.Context) (domain.FuelSettings, error)

	// SetFuelSettings upserts the vehicle parameters.
	SetFuelSettings(ctx context.Context, fs domain.FuelSettings) error
}

type pgSettingsRepo struct {
	db db
}

// NewSettingsRepo constructs a SettingsRepo backed by the provided db connection.
func NewSettingsRepo(db db) SettingsRepo {
	return &pgSettingsRepo{db: db}
}

const (
	keyDailyGoal   = "daily_goal"
	keyConsumption = "consumption_per_100km"
	keyFuelPrice   = "fuel_price"
)

func (r *pgSettingsRepo) DailyGoal(ctx context.Context) (float64, error) {
	v, err := r.value(ctx, keyDailyGoal)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return defaultDailyGoal, nil
		}
		return 0, fmt.Errorf("repo.SettingsRepo.DailyGoal: %w", err)
	}
	return v, nil
}

func (r *pgSettingsRepo) SetDailyGoal(ctx context.Context, target float64) error {
	if err := r.setValue(ctx, keyDailyGoal, target); err != nil {
		return fmt.Errorf("repo.SettingsRepo.SetDailyGoal: %w", err)
	}
	return nil
}

func (r *pgSettingsRepo) FuelSettings(ctx context.Context) (domain.FuelSettings, error) {
	fs := domain.FuelSettings{ConsumptionPer100: 7.0}

	if v, err := r.value(ctx, keyConsumption); err == nil {
		fs.ConsumptionPer100 = v
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.FuelSettings{}, fmt.Errorf("repo.SettingsRepo.FuelSettings: %w", err)
	}

	if v, err := r.value(ctx, keyFuelPrice); err == nil {
		fs.Price = v
	} else if !errors.Is(err, domain.ErrNotFound) {
		return domain.FuelSettings{}, fmt.Errorf("repo.SettingsRepo.FuelSettings: %w", err)
	}

	return fs, nil
}

func (r *pgSettingsRepo) SetFuelSettings(ctx context.Context, fs domain.FuelSettings) error {
	if err := r.setValue(ctx, keyConsumption, fs.ConsumptionPer100); err != nil {
		return fmt.Errorf("repo.SettingsRepo.SetFuelSettings: %w", err)
	}
	if err := r.setValue(ctx, keyFuelPrice, fs.Price); err != nil {
		return fmt.Errorf("repo.SettingsRepo.SetFuelSettings: %w", err)
	}
	return nil
}

// value reads a single numeric setting. Returns domain.ErrNotFound when the
// key has never been written.
func (r *pgSettingsRepo) value(ctx context.Context, key string) (float64, error) {
	const q = `SELECT value FROM settings WHERE key = @key`

	var raw string
	err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"key": key}).Scan(&raw)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, domain.ErrNotFound
		}
		return 0, err
	}

	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("setting %s holds non-numeric value %q: %w", key, raw, err)
	}
	return v, nil
}

func (r *pgSettingsRepo) setValue(ctx context.Context, key string, v float64) error {
	const q = `
		INSERT INTO settings (key, value)
		VALUES (@key, @value)
		ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`

	_, err := r.db.Exec(ctx, q, pgx.NamedArgs{
		"key":   key,
		"value": strconv.FormatFloat(v, 'f', -1, 64),
	})
	return err
}
