// Package service contains the business logic for the Martı Takip API.
// Services validate inputs, enforce business rules, and orchestrate repo calls.
// No SQL lives here — services depend on repo interfaces, not implementations.
package service

import (
	"context"
	"fmt"
	"math"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Fxloydd/marti-takip-api/internal/domain"
	"github.com/Fxloydd/marti-takip-api/internal/repo"
)

// dashboardDayLabels are the localized weekday labels of the weekly series,
// indexed by time.Weekday (Sunday first).
var dashboardDayLabels = [7]string{"Paz", "Pzt", "Sal", "Çar", "Per", "Cum", "Cmt"}

// DashboardService recomputes the full dashboard snapshot from the payment
// log on every call. There is no incremental state: concurrent callers each
// get their own consistent snapshot.
type DashboardService struct {
	payments repo.PaymentRepo
	users    repo.UserRepo
	settings repo.SettingsRepo
	now      func() time.Time
}

// NewDashboardService constructs a DashboardService backed by the provided repos.
func NewDashboardService(payments repo.PaymentRepo, users repo.UserRepo, settings repo.SettingsRepo) *DashboardService {
	return &DashboardService{payments: payments, users: users, settings: settings, now: time.Now}
}

// NewDashboardServiceWithClock is NewDashboardService with an injectable
// clock, for tests.
func NewDashboardServiceWithClock(payments repo.PaymentRepo, users repo.UserRepo, settings repo.SettingsRepo, now func() time.Time) *DashboardService {
	return &DashboardService{payments: payments, users: users, settings: settings, now: now}
}

// Get computes the dashboard for one view. An empty filterUser is the
// combined (team) view; a display name restricts everything to that driver.
//
// Payments, the goal target, and the user list are independent reads, so
// they are fetched concurrently; the snapshot is only assembled once all
// three have arrived. A failed fetch propagates to the caller — the engine
// never substitutes stale data.
func (s *DashboardService) Get(ctx context.Context, filterUser string) (domain.Dashboard, error) {
	now := s.now()

	// The weekly series needs the whole current week, which can begin in the
	// previous month, so fetch from whichever boundary is earlier.
	since := monthStart(now)
	if ws := weekStart(now); ws.Before(since) {
		since = ws
	}

	var (
		payments []domain.Payment
		target   float64
		users    []domain.User
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		payments, err = s.payments.ListSince(gctx, since, filterUser)
		return err
	})
	g.Go(func() error {
		var err error
		target, err = s.settings.DailyGoal(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		users, err = s.users.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.Dashboard{}, fmt.Errorf("service.DashboardService.Get: %w", err)
	}

	return buildDashboard(now, filterUser, payments, target, users), nil
}

// buildDashboard derives every view from one payment snapshot. Pure.
func buildDashboard(now time.Time, filterUser string, payments []domain.Payment, dailyTarget float64, users []domain.User) domain.Dashboard {
	today := dayStart(now)
	week := weekStart(now)

	var todayPayments []domain.Payment
	var dailyEarnings, cashTotal, ibanTotal, weeklyEarnings float64
	for _, p := range payments {
		if !p.CreatedAt.Before(week) {
			weeklyEarnings += p.Amount
		}
		if p.CreatedAt.Before(today) {
			continue
		}
		todayPayments = append(todayPayments, p)
		dailyEarnings += p.Amount
		if p.Type == domain.PaymentCash {
			cashTotal += p.Amount
		} else {
			ibanTotal += p.Amount
		}
	}
	if todayPayments == nil {
		todayPayments = []domain.Payment{}
	}

	// Personal view splits the team target evenly across registered drivers.
	personalTarget := dailyTarget
	if filterUser != "" {
		userCount := len(users)
		if userCount < 1 {
			userCount = 1
		}
		personalTarget = math.Round(dailyTarget / float64(userCount))
	}

	return domain.Dashboard{
		Payments:      todayPayments,
		TotalEarnings: dailyEarnings,
		CashTotal:     cashTotal,
		IBANTotal:     ibanTotal,
		DailyGoal:     domain.GoalProgress{Target: personalTarget, Current: dailyEarnings},
		WeeklyGoal:    domain.GoalProgress{Target: personalTarget * 7, Current: weeklyEarnings},
		Hourly:        hourlySeries(now, todayPayments),
		UserEarnings:  userSeries(filterUser, users, todayPayments),
		PaymentTypes: []domain.PaymentTypeTotal{
			{Name: "Nakit", Value: cashTotal},
			{Name: "IBAN", Value: ibanTotal},
		},
		Period: domain.PeriodSeries{
			Daily:   orPlaceholder(dailyPeriodSeries(now, todayPayments), "06:00"),
			Weekly:  weeklyPeriodSeries(now, payments),
			Monthly: orPlaceholder(monthlyPeriodSeries(now, payments), "1. Hafta"),
		},
	}
}

// hourlySeries buckets today's payments by their stored hour, from 06:00 up
// to the current hour. Before 6am the series is clamped to the single 06:00
// bucket so the chart always has a point.
func hourlySeries(now time.Time, today []domain.Payment) []domain.HourlyPoint {
	last := now.Hour()
	if last < 6 {
		last = 6
	}

	series := make([]domain.HourlyPoint, 0, last-5)
	for h := 6; h <= last; h++ {
		var sum float64
		for _, p := range today {
			if p.Hour == h {
				sum += p.Amount
			}
		}
		series = append(series, domain.HourlyPoint{Hour: hourLabel(h), Earnings: sum})
	}
	return series
}

// userSeries sums today's payments per driver. The personal view yields a
// single-entry series for the filtered driver only.
func userSeries(filterUser string, users []domain.User, today []domain.Payment) []domain.UserEarnings {
	var names []string
	if filterUser != "" {
		names = []string{filterUser}
	} else {
		for _, u := range users {
			names = append(names, u.DisplayName)
		}
	}

	series := make([]domain.UserEarnings, 0, len(names))
	for _, name := range names {
		e := domain.UserEarnings{User: name}
		for _, p := range today {
			if p.User != name {
				continue
			}
			e.Total += p.Amount
			if p.Type == domain.PaymentCash {
				e.Cash += p.Amount
			} else {
				e.IBAN += p.Amount
			}
		}
		series = append(series, e)
	}
	return series
}

// dailyPeriodSeries is the hourly series with per-type splits, for the
// period switcher.
func dailyPeriodSeries(now time.Time, today []domain.Payment) []domain.PeriodPoint {
	last := now.Hour()
	if last < 6 {
		last = 6
	}

	series := make([]domain.PeriodPoint, 0, last-5)
	for h := 6; h <= last; h++ {
		pt := domain.PeriodPoint{Label: hourLabel(h)}
		for _, p := range today {
			if p.Hour != h {
				continue
			}
			addToPoint(&pt, p)
		}
		series = append(series, pt)
	}
	return series
}

// weeklyPeriodSeries produces one bucket per day of the current week,
// Monday through Sunday, matching records by calendar day.
func weeklyPeriodSeries(now time.Time, payments []domain.Payment) []domain.PeriodPoint {
	start := weekStart(now)

	series := make([]domain.PeriodPoint, 0, 7)
	for i := 0; i < 7; i++ {
		day := start.AddDate(0, 0, i)
		pt := domain.PeriodPoint{Label: dashboardDayLabels[day.Weekday()]}
		for _, p := range payments {
			if !sameDay(p.CreatedAt, day) {
				continue
			}
			addToPoint(&pt, p)
		}
		series = append(series, pt)
	}
	return series
}

// monthlyPeriodSeries buckets the current month into 7-day spans starting
// from the 1st, capped at 5 spans. A record counts toward a span only if it
// also falls inside the current month (the last span can reach past it).
func monthlyPeriodSeries(now time.Time, payments []domain.Payment) []domain.PeriodPoint {
	spanStart := monthStart(now)

	var series []domain.PeriodPoint
	for week := 1; week <= 5 && !spanStart.After(now); week++ {
		spanEnd := spanStart.AddDate(0, 0, 7)
		pt := domain.PeriodPoint{Label: fmt.Sprintf("%d. Hafta", week)}
		for _, p := range payments {
			if p.CreatedAt.Before(spanStart) || !p.CreatedAt.Before(spanEnd) {
				continue
			}
			if p.CreatedAt.Month() != now.Month() || p.CreatedAt.Year() != now.Year() {
				continue
			}
			addToPoint(&pt, p)
		}
		series = append(series, pt)
		spanStart = spanEnd
	}
	return series
}

func addToPoint(pt *domain.PeriodPoint, p domain.Payment) {
	pt.Earnings += p.Amount
	if p.Type == domain.PaymentCash {
		pt.Cash += p.Amount
	} else {
		pt.IBAN += p.Amount
	}
}

func hourLabel(h int) string {
	return fmt.Sprintf("%02d:00", h)
}

// orPlaceholder substitutes a single zero-value bucket when a series came
// out empty, so charts always have at least one point.
func orPlaceholder(series []domain.PeriodPoint, label string) []domain.PeriodPoint {
	if len(series) > 0 {
		return series
	}
	return []domain.PeriodPoint{{Label: label}}
}
