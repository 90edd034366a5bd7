package service

import (
	"context"
	"fmt"

	"github.com/Fxloydd/marti-takip-api/internal/domain"
	"github.com/Fxloydd/marti-takip-api/internal/repo"
)

// GoalService reads and edits the process-wide daily earnings target.
// The weekly target is always derived (daily * 7), never stored.
type GoalService struct {
	settings repo.SettingsRepo
}

// NewGoalService constructs a GoalService backed by the provided SettingsRepo.
func NewGoalService(settings repo.SettingsRepo) *GoalService {
	return &GoalService{settings: settings}
}

// Get returns the current daily target.
func (s *GoalService) Get(ctx context.Context) (float64, error) {
	target, err := s.settings.DailyGoal(ctx)
	if err != nil {
		return 0, fmt.Errorf("service.GoalService.Get: %w", err)
	}
	return target, nil
}

// Set stores a new daily target. The target must be strictly positive;
// the invariant is enforced here at edit time, not at storage time.
func (s *GoalService) Set(ctx context.Context, target float64) error {
	if target <= 0 {
		return fmt.Errorf("%w: goal must be positive", domain.ErrValidation)
	}
	if err := s.settings.SetDailyGoal(ctx, target); err != nil {
		return fmt.Errorf("service.GoalService.Set: %w", err)
	}
	return nil
}
