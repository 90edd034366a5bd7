package service

import (
	"context"
	"fmt"
	"time"

	"github.com/Fxloydd/marti-takip-api/internal/domain"
	"github.com/Fxloydd/marti-takip-api/internal/repo"
)

// ReportService collects the payment rows for a report export.
type ReportService struct {
	payments repo.PaymentRepo
}

// NewReportService constructs a ReportService backed by the provided PaymentRepo.
func NewReportService(payments repo.PaymentRepo) *ReportService {
	return &ReportService{payments: payments}
}

// Range returns the payments of the inclusive calendar-day range [from, to],
// oldest first. An empty user exports all drivers.
// Returns domain.ErrValidation when the range is inverted.
func (s *ReportService) Range(ctx context.Context, from, to time.Time, user string) ([]domain.Payment, error) {
	if to.Before(from) {
		return nil, fmt.Errorf("%w: range end before start", domain.ErrValidation)
	}

	payments, err := s.payments.ListRange(ctx, dayStart(from), dayStart(to).AddDate(0, 0, 1), user)
	if err != nil {
		return nil, fmt.Errorf("service.ReportService.Range: %w", err)
	}
	if payments == nil {
		return []domain.Payment{}, nil
	}
	return payments, nil
}
