package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/Fxloydd/marti-takip-api/internal/domain"
	"github.com/Fxloydd/marti-takip-api/internal/fuel"
	"github.com/Fxloydd/marti-takip-api/internal/handler"
	"github.com/Fxloydd/marti-takip-api/internal/tracker"
)

// ---- test doubles ----------------------------------------------------------
// One mock per consumer-side interface. Set only the method fields your test
// needs; unset methods panic on call, which is a test bug worth noticing.

type mockDashboard struct {
	get func(ctx context.Context, filterUser string) (domain.Dashboard, error)
}

func (m *mockDashboard) Get(ctx context.Context, filterUser string) (domain.Dashboard, error) {
	return m.get(ctx, filterUser)
}

var _ handler.DashboardServicer = (*mockDashboard)(nil)

type mockPayments struct {
	create  func(ctx context.Context, amount float64, ptype domain.PaymentType, user, location string) (domain.Payment, error)
	getByID func(ctx context.Context, id uuid.UUID) (domain.Payment, error)
	update  func(ctx context.Context, id uuid.UUID, edit domain.PaymentEdit) (domain.Payment, error)
	delete  func(ctx context.Context, id uuid.UUID) error
}

func (m *mockPayments) Create(ctx context.Context, amount float64, ptype domain.PaymentType, user, location string) (domain.Payment, error) {
	return m.create(ctx, amount, ptype, user, location)
}
func (m *mockPayments) GetByID(ctx context.Context, id uuid.UUID) (domain.Payment, error) {
	return m.getByID(ctx, id)
}
func (m *mockPayments) Update(ctx context.Context, id uuid.UUID, edit domain.PaymentEdit) (domain.Payment, error) {
	return m.update(ctx, id, edit)
}
func (m *mockPayments) Delete(ctx context.Context, id uuid.UUID) error {
	return m.delete(ctx, id)
}

var _ handler.PaymentServicer = (*mockPayments)(nil)

type mockGoals struct {
	get func(ctx context.Context) (float64, error)
	set func(ctx context.Context, target float64) error
}

func (m *mockGoals) Get(ctx context.Context) (float64, error)      { return m.get(ctx) }
func (m *mockGoals) Set(ctx context.Context, target float64) error { return m.set(ctx, target) }

var _ handler.GoalServicer = (*mockGoals)(nil)

type mockUsers struct {
	list func(ctx context.Context) ([]domain.User, error)
}

func (m *mockUsers) List(ctx context.Context) ([]domain.User, error) { return m.list(ctx) }

var _ handler.UserLister = (*mockUsers)(nil)

type mockTrips struct {
	saveFinished    func(ctx context.Context, sum tracker.Summary) (domain.TripSummary, error)
	history         func(ctx context.Context, limit int) ([]domain.TripSummary, error)
	fuelSettings    func(ctx context.Context) (domain.FuelSettings, error)
	setFuelSettings func(ctx context.Context, fs domain.FuelSettings) error
}

func (m *mockTrips) SaveFinished(ctx context.Context, sum tracker.Summary) (domain.TripSummary, error) {
	return m.saveFinished(ctx, sum)
}
func (m *mockTrips) History(ctx context.Context, limit int) ([]domain.TripSummary, error) {
	return m.history(ctx, limit)
}
func (m *mockTrips) FuelSettings(ctx context.Context) (domain.FuelSettings, error) {
	return m.fuelSettings(ctx)
}
func (m *mockTrips) SetFuelSettings(ctx context.Context, fs domain.FuelSettings) error {
	return m.setFuelSettings(ctx, fs)
}

var _ handler.TripServicer = (*mockTrips)(nil)

type mockReports struct {
	rng func(ctx context.Context, from, to time.Time, user string) ([]domain.Payment, error)
}

func (m *mockReports) Range(ctx context.Context, from, to time.Time, user string) ([]domain.Payment, error) {
	return m.rng(ctx, from, to, user)
}

var _ handler.ReportServicer = (*mockReports)(nil)

type mockPrices struct {
	current func(ctx context.Context) fuel.Quote
	refresh func(ctx context.Context) fuel.Quote
}

func (m *mockPrices) Current(ctx context.Context) fuel.Quote { return m.current(ctx) }
func (m *mockPrices) Refresh(ctx context.Context) fuel.Quote { return m.refresh(ctx) }

var _ handler.PriceServicer = (*mockPrices)(nil)

// ---- helpers ---------------------------------------------------------------

// deps collects the Server dependencies a test cares about; zero fields stay nil.
type deps struct {
	dashboard handler.DashboardServicer
	payments  handler.PaymentServicer
	goals     handler.GoalServicer
	users     handler.UserLister
	trips     handler.TripServicer
	reports   handler.ReportServicer
	prices    handler.PriceServicer
	session   handler.SessionTracker
	feed      handler.PositionFeed
}

// newHTTPHandler wires a Server with the given mocks into the chi router,
// mirroring how main.go wires it in production.
func newHTTPHandler(d deps) http.Handler {
	srv := handler.NewServer(
		d.dashboard, d.payments, d.goals, d.users,
		d.trips, d.reports, d.prices, d.session, d.feed,
	)
	return srv.Routes()
}

func jsonBody(t *testing.T, v any) *bytes.Buffer {
	t.Helper()
	b, err := json.Marshal(v)
	require.NoError(t, err)
	return bytes.NewBuffer(b)
}

func decodeBody[T any](t *testing.T, body *bytes.Buffer) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(body).Decode(&v))
	return v
}
