package service

import (
	"context"
	"time"

	"studya/internal/modules/goal/domain"
	goalout "studya/internal/modules/goal/port/out"
	"studya/internal/platform/clock"
)

// LedgerService is the accounting core for recurring goals: it loads the goal
// list, applies any pending period resets, and persists every mutation.
type LedgerService struct {
	clk       clock.Clock
	store     goalout.GoalStore
	weekStart time.Weekday
	prorate   bool
}

func NewLedgerService(clk clock.Clock, store goalout.GoalStore, weekStart time.Weekday, prorate bool) *LedgerService {
	return &LedgerService{clk: clk, store: store, weekStart: weekStart, prorate: prorate}
}

// Load returns the goals with period resets applied. Resets are persisted so
// the boundary is crossed at most once.
func (s *LedgerService) Load(ctx context.Context) ([]domain.Goal, error) {
	goals, err := s.store.Load(ctx)
	if err != nil {
		return nil, err
	}
	now := s.clk.Now()
	dirty := false
	for i := range goals {
		if goals[i].ResetIfNewPeriod(now, s.weekStart) {
			dirty = true
		}
	}
	if dirty {
		if err := s.store.Save(ctx, goals); err != nil {
			return nil, err
		}
	}
	return goals, nil
}

// Set creates or replaces the goal for a category. Period progress already
// accrued in the current period is preserved; achievement stays monotonic.
func (s *LedgerService) Set(ctx context.Context, goal domain.Goal) (domain.Goal, error) {
	if err := goal.Validate(); err != nil {
		return domain.Goal{}, err
	}
	goals, err := s.Load(ctx)
	if err != nil {
		return domain.Goal{}, err
	}
	now := s.clk.Now()
	goal.PeriodStart = domain.PeriodStartAt(now, goal.Period, s.weekStart)
	replaced := false
	for i := range goals {
		if goals[i].Category != goal.Category {
			continue
		}
		goal.SpentHours = goals[i].SpentHours
		goal.Achieved = goals[i].Achieved || goal.SpentHours >= goal.TargetHours
		goals[i] = goal
		replaced = true
		break
	}
	if !replaced {
		goals = append(goals, goal)
	}
	if err := s.store.Save(ctx, goals); err != nil {
		return domain.Goal{}, err
	}
	return goal, nil
}

// Accrue adds tracked time to the category's goal, if one exists. It reports
// whether a goal matched and whether this accrual achieved it.
func (s *LedgerService) Accrue(ctx context.Context, category string, d time.Duration) (bool, bool, error) {
	goals, err := s.Load(ctx)
	if err != nil {
		return false, false, err
	}
	for i := range goals {
		if goals[i].Category != category {
			continue
		}
		justAchieved := goals[i].Accrue(d)
		if err := s.store.Save(ctx, goals); err != nil {
			return false, false, err
		}
		return true, justAchieved, nil
	}
	return false, false, nil
}

// Achieve force-marks the category's goal for the current period, used when
// a goal-mode countdown runs to zero. Already-achieved and missing goals are
// no-ops.
func (s *LedgerService) Achieve(ctx context.Context, category string) (bool, error) {
	goals, err := s.Load(ctx)
	if err != nil {
		return false, err
	}
	for i := range goals {
		if goals[i].Category != category || goals[i].Achieved {
			continue
		}
		goals[i].Achieved = true
		if err := s.store.Save(ctx, goals); err != nil {
			return false, err
		}
		return true, nil
	}
	return false, nil
}

func (s *LedgerService) WeekStart() time.Weekday {
	return s.weekStart
}

// Prorate reports whether weekly goals should expose a per-day target.
func (s *LedgerService) Prorate() bool {
	return s.prorate
}

func (s *LedgerService) Now() time.Time {
	return s.clk.Now()
}
