// Package repo contains all database access logic for the Martı Takip API.
// Each resource has its own file with an interface and a Postgres implementation.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/Fxloydd/marti-takip-api/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PaymentRepo defines the persistence operations for payment records.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type PaymentRepo interface {
	// Create inserts a new payment and returns the persisted record (with
	// DB-generated id and created_at populated).
	Create(ctx context.Context, p domain.Payment) (domain.Payment, error)

	// GetByID retrieves a single payment by its UUID primary key.
	// Returns domain.ErrNotFound if no payment with that ID exists.
	GetByID(ctx context.Context, id uuid.UUID) (domain.Payment, error)

	// ListSince returns payments created at or after since, newest first.
	// A non-empty user restricts results to that attribution display name.
	ListSince(ctx context.Context, since time.Time, user string) ([]domain.Payment, error)

	// ListRange returns payments with from <= created_at < to, oldest first.
	// A non-empty user restricts results to that attribution display name.
	ListRange(ctx context.Context, from, to time.Time, user string) ([]domain.Payment, error)

	// Update overwrites the editable fields (amount, type, location) of an
	// existing payment and returns the updated record.
	// Returns domain.ErrNotFound if no payment with that ID exists.
	Update(ctx context.Context, id uuid.UUID, edit domain.PaymentEdit) (domain.Payment, error)

	// Delete removes a payment by ID. Returns domain.ErrNotFound if it does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

// pgPaymentRepo is the Postgres implementation of PaymentRepo.
type pgPaymentRepo struct {
	db db
}

// NewPaymentRepo constructs a PaymentRepo backed by the provided db connection.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewPaymentRepo(db db) PaymentRepo {
	return &pgPaymentRepo{db: db}
}

const paymentColumns = `id, amount, payment_type, user_display_name, location, hour, created_at`

// Create inserts a new payment row and returns the full persisted record.
func (r *pgPaymentRepo) Create(ctx context.Context, p domain.Payment) (domain.Payment, error) {
	const q = `
		INSERT INTO payments (amount, payment_type, user_display_name, location, hour)
		VALUES (@amount, @payment_type, @user_display_name, @location, @hour)
		RETURNING ` + paymentColumns

	args := pgx.NamedArgs{
		"amount":            p.Amount,
		"payment_type":      string(p.Type),
		"user_display_name": p.User,
		"location":          p.Location,
		"hour":              p.Hour,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanPayment(row)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("repo.PaymentRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a payment by primary key.
func (r *pgPaymentRepo) GetByID(ctx context.Context, id uuid.UUID) (domain.Payment, error) {
	const q = `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanPayment(row)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("repo.PaymentRepo.GetByID: %w", err)
	}
	return result, nil
}

// ListSince returns payments created at or after since, newest first.
// The user filter compares the attribution display name exactly; an empty
// string disables the filter (combined view).
func (r *pgPaymentRepo) ListSince(ctx context.Context, since time.Time, user string) ([]domain.Payment, error) {
	const q = `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE created_at >= @since
		  AND (@user = '' OR user_display_name = @user)
		ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"since": since, "user": user})
	if err != nil {
		return nil, fmt.Errorf("repo.PaymentRepo.ListSince: %w", err)
	}
	defer rows.Close()

	return collectPayments(rows, "ListSince")
}

// ListRange returns payments inside [from, to), oldest first — the order
// report exports want.
func (r *pgPaymentRepo) ListRange(ctx context.Context, from, to time.Time, user string) ([]domain.Payment, error) {
	const q = `
		SELECT ` + paymentColumns + `
		FROM payments
		WHERE created_at >= @from
		  AND created_at < @to
		  AND (@user = '' OR user_display_name = @user)
		ORDER BY created_at ASC`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"from": from, "to": to, "user": user})
	if err != nil {
		return nil, fmt.Errorf("repo.PaymentRepo.ListRange: %w", err)
	}
	defer rows.Close()

	return collectPayments(rows, "ListRange")
}

// Update overwrites the editable fields of a payment and returns the updated
// record. The hour bucket and created_at deliberately stay untouched.
func (r *pgPaymentRepo) Update(ctx context.Context, id uuid.UUID, edit domain.PaymentEdit) (domain.Payment, error) {
	const q = `
		UPDATE payments
		SET amount       = @amount,
		    payment_type = @payment_type,
		    location     = @location
		WHERE id = @id
		RETURNING ` + paymentColumns

	args := pgx.NamedArgs{
		"id":           id,
		"amount":       edit.Amount,
		"payment_type": string(edit.Type),
		"location":     edit.Location,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanPayment(row)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("repo.PaymentRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a payment by primary key.
func (r *pgPaymentRepo) Delete(ctx context.Context, id uuid.UUID) error {
	const q = `DELETE FROM payments WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.PaymentRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.PaymentRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanPayment to
// be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanPayment maps a single database row into a domain.Payment.
func scanPayment(s scanner) (domain.Payment, error) {
	var (
		p     domain.Payment
		id    pgtype.UUID
		ptype string
	)

	err := s.Scan(&id, &p.Amount, &ptype, &p.User, &p.Location, &p.Hour, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Payment{}, domain.ErrNotFound
		}
		return domain.Payment{}, err
	}

	p.ID = uuid.UUID(id.Bytes)
	p.Type = domain.PaymentType(ptype)

	return p, nil
}

// collectPayments drains rows into a slice, wrapping errors with the caller name.
func collectPayments(rows pgx.Rows, op string) ([]domain.Payment, error) {
	var payments []domain.Payment
	for rows.Next() {
		p, err := scanPayment(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.PaymentRepo.%s: scan: %w", op, err)
		}
		payments = append(payments, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.PaymentRepo.%s: rows: %w", op, err)
	}
	return payments, nil
}
