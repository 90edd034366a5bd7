package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Fxloydd/marti-takip-api/internal/domain"
	"github.com/Fxloydd/marti-takip-api/internal/notify"
	"github.com/Fxloydd/marti-takip-api/internal/service"
)

// recordingNotifier captures notification calls for assertions.
type recordingNotifier struct {
	added   []string
	deleted int
	reached []string
}

func (n *recordingNotifier) PaymentAdded(amount float64, user string) { n.added = append(n.added, user) }
func (n *recordingNotifier) PaymentDeleted()                          { n.deleted++ }
func (n *recordingNotifier) GoalReached(goal string)                  { n.reached = append(n.reached, goal) }

var _ notify.Notifier = (*recordingNotifier)(nil)

func echoPaymentRepo() *mockPaymentRepo {
	return &mockPaymentRepo{
		create: func(_ context.Context, p domain.Payment) (domain.Payment, error) {
			p.ID = uuid.New()
			p.CreatedAt = refNow
			return p, nil
		},
		listSince: func(context.Context, time.Time, string) ([]domain.Payment, error) {
			return nil, nil
		},
	}
}

func quietSettings(target float64) *mockSettingsRepo {
	return &mockSettingsRepo{
		dailyGoal: func(context.Context) (float64, error) { return target, nil },
	}
}

func TestPaymentCreate_PinsHourToCreationInstant(t *testing.T) {
	payments := echoPaymentRepo()
	svc := service.NewPaymentServiceWithClock(payments, quietSettings(3000), notify.Noop{}, func() time.Time { return refNow })

	got, err := svc.Create(context.Background(), 150, domain.PaymentCash, "Ali", "Kadıköy")

	require.NoError(t, err)
	assert.Equal(t, 15, got.Hour)
	assert.Equal(t, "Kadıköy", got.Location)
}

func TestPaymentCreate_DefaultsBlankLocation(t *testing.T) {
	svc := service.NewPaymentServiceWithClock(echoPaymentRepo(), quietSettings(3000), notify.Noop{}, func() time.Time { return refNow })

	got, err := svc.Create(context.Background(), 150, domain.PaymentIBAN, "Ali", "   ")

	require.NoError(t, err)
	assert.Equal(t, "Bilinmiyor", got.Location)
}

func TestPaymentCreate_Validation(t *testing.T) {
	svc := service.NewPaymentServiceWithClock(echoPaymentRepo(), quietSettings(3000), notify.Noop{}, func() time.Time { return refNow })

	tests := []struct {
		name   string
		amount float64
		ptype  domain.PaymentType
		user   string
	}{
		{"zero amount", 0, domain.PaymentCash, "Ali"},
		{"negative amount", -10, domain.PaymentCash, "Ali"},
		{"unknown type", 100, domain.PaymentType("cheque"), "Ali"},
		{"blank user", 100, domain.PaymentCash, "  "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.amount, tc.ptype, tc.user, "")
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestPaymentCreate_NotifiesAndChecksGoal(t *testing.T) {
	payments := echoPaymentRepo()
	payments.listSince = func(context.Context, time.Time, string) ([]domain.Payment, error) {
		return []domain.Payment{
			{Amount: 2900, CreatedAt: refNow},
			{Amount: 150, CreatedAt: refNow},
		}, nil
	}
	notifier := &recordingNotifier{}
	svc := service.NewPaymentServiceWithClock(payments, quietSettings(3000), notifier, func() time.Time { return refNow })

	_, err := svc.Create(context.Background(), 150, domain.PaymentCash, "Ali", "")

	require.NoError(t, err)
	assert.Equal(t, []string{"Ali"}, notifier.added)
	assert.Equal(t, []string{"daily"}, notifier.reached)
}

func TestPaymentCreate_GoalNotifiedOnlyOnCrossing(t *testing.T) {
	// The target was already crossed earlier today; this payment lands on
	// top of the surplus and must not re-fire the notification.
	payments := echoPaymentRepo()
	payments.listSince = func(context.Context, time.Time, string) ([]domain.Payment, error) {
		return []domain.Payment{
			{Amount: 3150, CreatedAt: refNow},
			{Amount: 100, CreatedAt: refNow},
		}, nil
	}
	notifier := &recordingNotifier{}
	svc := service.NewPaymentServiceWithClock(payments, quietSettings(3000), notifier, func() time.Time { return refNow })

	_, err := svc.Create(context.Background(), 100, domain.PaymentCash, "Ali", "")

	require.NoError(t, err)
	assert.Empty(t, notifier.reached)
}

func TestPaymentCreate_GoalNotifiedOnExactHit(t *testing.T) {
	payments := echoPaymentRepo()
	payments.listSince = func(context.Context, time.Time, string) ([]domain.Payment, error) {
		return []domain.Payment{
			{Amount: 2800, CreatedAt: refNow},
			{Amount: 200, CreatedAt: refNow},
		}, nil
	}
	notifier := &recordingNotifier{}
	svc := service.NewPaymentServiceWithClock(payments, quietSettings(3000), notifier, func() time.Time { return refNow })

	_, err := svc.Create(context.Background(), 200, domain.PaymentCash, "Ali", "")

	require.NoError(t, err)
	assert.Equal(t, []string{"daily"}, notifier.reached)
}

func TestPaymentCreate_NoGoalNotificationBelowTarget(t *testing.T) {
	payments := echoPaymentRepo()
	payments.listSince = func(context.Context, time.Time, string) ([]domain.Payment, error) {
		return []domain.Payment{{Amount: 500, CreatedAt: refNow}}, nil
	}
	notifier := &recordingNotifier{}
	svc := service.NewPaymentServiceWithClock(payments, quietSettings(3000), notifier, func() time.Time { return refNow })

	_, err := svc.Create(context.Background(), 500, domain.PaymentCash, "Ali", "")

	require.NoError(t, err)
	assert.Empty(t, notifier.reached)
}

func TestPaymentUpdate_Validation(t *testing.T) {
	svc := service.NewPaymentServiceWithClock(echoPaymentRepo(), quietSettings(3000), notify.Noop{}, func() time.Time { return refNow })

	_, err := svc.Update(context.Background(), uuid.New(), domain.PaymentEdit{Amount: -5, Type: domain.PaymentCash})

	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestPaymentUpdate_PassesEditThrough(t *testing.T) {
	var gotEdit domain.PaymentEdit
	payments := echoPaymentRepo()
	payments.update = func(_ context.Context, _ uuid.UUID, edit domain.PaymentEdit) (domain.Payment, error) {
		gotEdit = edit
		return domain.Payment{Amount: edit.Amount, Type: edit.Type, Location: edit.Location}, nil
	}
	svc := service.NewPaymentServiceWithClock(payments, quietSettings(3000), notify.Noop{}, func() time.Time { return refNow })

	edit := domain.PaymentEdit{Amount: 80, Type: domain.PaymentIBAN, Location: "Üsküdar"}
	_, err := svc.Update(context.Background(), uuid.New(), edit)

	require.NoError(t, err)
	assert.Equal(t, edit, gotEdit)
}

func TestPaymentDelete_Notifies(t *testing.T) {
	payments := echoPaymentRepo()
	payments.delete = func(context.Context, uuid.UUID) error { return nil }
	notifier := &recordingNotifier{}
	svc := service.NewPaymentServiceWithClock(payments, quietSettings(3000), notifier, func() time.Time { return refNow })

	require.NoError(t, svc.Delete(context.Background(), uuid.New()))
	assert.Equal(t, 1, notifier.deleted)
}

func TestPaymentDelete_NotFoundSkipsNotification(t *testing.T) {
	payments := echoPaymentRepo()
	payments.delete = func(context.Context, uuid.UUID) error { return domain.ErrNotFound }
	notifier := &recordingNotifier{}
	svc := service.NewPaymentServiceWithClock(payments, quietSettings(3000), notifier, func() time.Time { return refNow })

	err := svc.Delete(context.Background(), uuid.New())

	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.Zero(t, notifier.deleted)
}
