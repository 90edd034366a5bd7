package service

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/Fxloydd/marti-takip-api/internal/domain"
	"github.com/Fxloydd/marti-takip-api/internal/notify"
	"github.com/Fxloydd/marti-takip-api/internal/repo"
)

// defaultLocation replaces a blank free-text location on new payments.
const defaultLocation = "Bilinmiyor"

// PaymentService implements business logic for payment records: validation,
// the immutable hour bucket, and the notification side effects.
type PaymentService struct {
	payments repo.PaymentRepo
	settings repo.SettingsRepo
	notifier notify.Notifier
	now      func() time.Time
}

// NewPaymentService constructs a PaymentService. Pass notify.Noop{} when no
// notification transport is configured.
func NewPaymentService(payments repo.PaymentRepo, settings repo.SettingsRepo, notifier notify.Notifier) *PaymentService {
	return &PaymentService{payments: payments, settings: settings, notifier: notifier, now: time.Now}
}

// NewPaymentServiceWithClock is NewPaymentService with an injectable clock, for tests.
func NewPaymentServiceWithClock(payments repo.PaymentRepo, settings repo.SettingsRepo, notifier notify.Notifier, now func() time.Time) *PaymentService {
	return &PaymentService{payments: payments, settings: settings, notifier: notifier, now: now}
}

// Create validates and persists a new payment record.
// The hour bucket is pinned to the creation instant and never recomputed.
// Returns the authoritative record so optimistic client copies can be
// replaced by id, not appended.
func (s *PaymentService) Create(ctx context.Context, amount float64, ptype domain.PaymentType, user, location string) (domain.Payment, error) {
	if err := validatePayment(amount, ptype); err != nil {
		return domain.Payment{}, err
	}
	if strings.TrimSpace(user) == "" {
		return domain.Payment{}, fmt.Errorf("%w: user is required", domain.ErrValidation)
	}
	if strings.TrimSpace(location) == "" {
		location = defaultLocation
	}

	now := s.now()
	created, err := s.payments.Create(ctx, domain.Payment{
		Amount:   amount,
		Type:     ptype,
		User:     user,
		Location: location,
		Hour:     now.Hour(),
	})
	if err != nil {
		return domain.Payment{}, fmt.Errorf("service.PaymentService.Create: %w", err)
	}

	s.notifier.PaymentAdded(created.Amount, created.User)
	s.checkDailyGoal(ctx, now, created.Amount)

	return created, nil
}

// Update validates and persists changes to the editable fields of a payment.
// Timestamp, attribution, and the hour bucket are immutable post-creation.
func (s *PaymentService) Update(ctx context.Context, id uuid.UUID, edit domain.PaymentEdit) (domain.Payment, error) {
	if err := validatePayment(edit.Amount, edit.Type); err != nil {
		return domain.Payment{}, err
	}

	updated, err := s.payments.Update(ctx, id, edit)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("service.PaymentService.Update: %w", err)
	}
	return updated, nil
}

// Delete removes a payment by ID.
func (s *PaymentService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := s.payments.Delete(ctx, id); err != nil {
		return fmt.Errorf("service.PaymentService.Delete: %w", err)
	}
	s.notifier.PaymentDeleted()
	return nil
}

// GetByID returns a single payment by ID.
func (s *PaymentService) GetByID(ctx context.Context, id uuid.UUID) (domain.Payment, error) {
	p, err := s.payments.GetByID(ctx, id)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("service.PaymentService.GetByID: %w", err)
	}
	return p, nil
}

// checkDailyGoal fires the goal-reached notification when the payment just
// created pushed today's combined earnings across the team target. Payments
// added after the crossing stay silent — one notification per day, not one
// per payment. Best-effort: failures are logged, the created payment is
// already committed.
func (s *PaymentService) checkDailyGoal(ctx context.Context, now time.Time, createdAmount float64) {
	target, err := s.settings.DailyGoal(ctx)
	if err != nil || target <= 0 {
		if err != nil {
			slog.Warn("goal check skipped", "error", err)
		}
		return
	}

	today, err := s.payments.ListSince(ctx, dayStart(now), "")
	if err != nil {
		slog.Warn("goal check skipped", "error", err)
		return
	}

	var sum float64
	for _, p := range today {
		sum += p.Amount
	}

	after := domain.GoalProgress{Target: target, Current: sum}
	before := domain.GoalProgress{Target: target, Current: sum - createdAmount}
	if after.Achieved() && !before.Achieved() {
		s.notifier.GoalReached("daily")
	}
}

// validatePayment enforces the rules shared by Create and Update.
//   - Amount must be strictly positive.
//   - Payment type must be one of the known enum values.
func validatePayment(amount float64, ptype domain.PaymentType) error {
	if amount <= 0 {
		return fmt.Errorf("%w: amount must be positive", domain.ErrValidation)
	}
	if !ptype.Valid() {
		return fmt.Errorf("%w: unknown payment type %q", domain.ErrValidation, ptype)
	}
	return nil
}
