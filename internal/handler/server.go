// Package handler implements the HTTP handlers for the Martı Takip API.
// All handlers are methods on Server. Methods are split into domain-specific
// files (dashboard.go, payment.go, etc.) but all share the same Server struct
// so they can access its dependencies.
package handler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Fxloydd/marti-takip-api/internal/domain"
	"github.com/Fxloydd/marti-takip-api/internal/fuel"
	"github.com/Fxloydd/marti-takip-api/internal/tracker"
)

// DashboardServicer defines the read operations the dashboard handler
// depends on. Defining the interface here (in the consumer package) follows
// the Go convention: "accept interfaces, return concrete types". It lets
// handler tests inject a mock without touching the database or service layer.
type DashboardServicer interface {
	Get(ctx context.Context, filterUser string) (domain.Dashboard, error)
}

// PaymentServicer defines the business operations the payment handler depends on.
type PaymentServicer interface {
	Create(ctx context.Context, amount float64, ptype domain.PaymentType, user, location string) (domain.Payment, error)
	GetByID(ctx context.Context, id uuid.UUID) (domain.Payment, error)
	Update(ctx context.Context, id uuid.UUID, edit domain.PaymentEdit) (domain.Payment, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// GoalServicer defines the daily-goal operations the goal handler depends on.
type GoalServicer interface {
	Get(ctx context.Context) (float64, error)
	Set(ctx context.Context, target float64) error
}

// UserLister defines the user listing the users handler depends on.
type UserLister interface {
	List(ctx context.Context) ([]domain.User, error)
}

// TripServicer defines the trip persistence operations the trip handler
// depends on once a tracking session finishes.
type TripServicer interface {
	SaveFinished(ctx context.Context, sum tracker.Summary) (domain.TripSummary, error)
	History(ctx context.Context, limit int) ([]domain.TripSummary, error)
	FuelSettings(ctx context.Context) (domain.FuelSettings, error)
	SetFuelSettings(ctx context.Context, fs domain.FuelSettings) error
}

// ReportServicer defines the payment-range read the export handler depends on.
type ReportServicer interface {
	Range(ctx context.Context, from, to time.Time, user string) ([]domain.Payment, error)
}

// PriceServicer defines the petrol price reads the fuel-price handler
// depends on.
type PriceServicer interface {
	Current(ctx context.Context) fuel.Quote
	Refresh(ctx context.Context) fuel.Quote
}

// SessionTracker defines the live tracking session operations the trip
// handler depends on. Satisfied by *tracker.Tracker.
type SessionTracker interface {
	Start() error
	Pause() error
	Resume() error
	Finish() (tracker.Summary, error)
	State() tracker.State
	ElapsedMinutes() float64
}

// PositionFeed accepts device position readings pushed over HTTP.
// Satisfied by *tracker.PushSource.
type PositionFeed interface {
	Push(s tracker.Sample) bool
	Fail(e tracker.WatchError) bool
}

// Server holds the dependencies shared by all API endpoints.
// Methods are in domain-specific files but all operate on this struct.
type Server struct {
	dashboard DashboardServicer
	payments  PaymentServicer
	goals     GoalServicer
	users     UserLister
	trips     TripServicer
	reports   ReportServicer
	prices    PriceServicer
	session   SessionTracker
	feed      PositionFeed
}

// NewServer constructs the Server with all its dependencies.
func NewServer(
	dashboard DashboardServicer,
	payments PaymentServicer,
	goals GoalServicer,
	users UserLister,
	trips TripServicer,
	reports ReportServicer,
	prices PriceServicer,
	session SessionTracker,
	feed PositionFeed,
) *Server {
	return &Server{
		dashboard: dashboard,
		payments:  payments,
		goals:     goals,
		users:     users,
		trips:     trips,
		reports:   reports,
		prices:    prices,
		session:   session,
		feed:      feed,
	}
}
