package usecase

import (
	"context"
	"strings"
	"time"

	"studya/internal/modules/goal/domain"
	goaldto "studya/internal/modules/goal/dto"
	goalin "studya/internal/modules/goal/port/in"
	"studya/internal/modules/goal/service"
	sessionin "studya/internal/modules/session/port/in"
	apperrors "studya/internal/platform/errors"
)

type Interactor struct {
	svc     *service.LedgerService
	history sessionin.Usecase
}

func NewInteractor(svc *service.LedgerService, history sessionin.Usecase) goalin.Usecase {
	return &Interactor{svc: svc, history: history}
}

func (i *Interactor) Set(ctx context.Context, input goaldto.SetInput) (goaldto.GoalOutput, error) {
	goal, err := i.svc.Set(ctx, domain.Goal{
		Category:    strings.TrimSpace(input.Category),
		TargetHours: input.TargetHours,
		Period:      domain.Period(strings.ToLower(strings.TrimSpace(input.Period))),
	})
	if err != nil {
		return goaldto.GoalOutput{}, err
	}
	return toGoalOutput(goal), nil
}

func (i *Interactor) List(ctx context.Context) ([]goaldto.GoalOutput, error) {
	goals, err := i.svc.Load(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]goaldto.GoalOutput, 0, len(goals))
	for _, goal := range goals {
		out = append(out, toGoalOutput(goal))
	}
	return out, nil
}

func (i *Interactor) Get(ctx context.Context, category string) (goaldto.GoalOutput, error) {
	goals, err := i.svc.Load(ctx)
	if err != nil {
		return goaldto.GoalOutput{}, err
	}
	for _, goal := range goals {
		if goal.Category == category {
			return toGoalOutput(goal), nil
		}
	}
	return goaldto.GoalOutput{}, apperrors.ErrNoGoalConfigured
}

// Accrue adds a finalized session's duration toward its category goal. A
// category with no goal is a defined no-op, never an error.
func (i *Interactor) Accrue(ctx context.Context, input goaldto.AccrueInput) (goaldto.AccrueOutput, error) {
	if input.Duration <= 0 {
		return goaldto.AccrueOutput{}, nil
	}
	accrued, justAchieved, err := i.svc.Accrue(ctx, input.Category, input.Duration)
	if err != nil {
		return goaldto.AccrueOutput{}, err
	}
	return goaldto.AccrueOutput{Accrued: accrued, JustAchieved: justAchieved}, nil
}

func (i *Interactor) Achieve(ctx context.Context, category string) (bool, error) {
	return i.svc.Achieve(ctx, category)
}

// Progress is a read-only projection: ledger state plus today's finalized
// totals plus the caller-supplied live session, with no side effects beyond
// a pending period reset.
func (i *Interactor) Progress(ctx context.Context, input goaldto.ProgressInput) ([]goaldto.ProgressOutput, error) {
	goals, err := i.svc.Load(ctx)
	if err != nil {
		return nil, err
	}
	now := i.svc.Now()
	todayByCategory := map[string]time.Duration{}
	if i.history != nil {
		totals, err := i.history.DayTotals(ctx, now)
		if err != nil {
			return nil, err
		}
		for _, total := range totals.Categories {
			todayByCategory[total.Category] = time.Duration(total.Minutes) * time.Minute
		}
	}
	if input.LiveCategory != "" {
		todayByCategory[input.LiveCategory] += input.LiveElapsed
	}

	out := make([]goaldto.ProgressOutput, 0, len(goals))
	for _, goal := range goals {
		if input.Category != "" && goal.Category != input.Category {
			continue
		}
		var dailyTarget time.Duration
		if i.svc.Prorate() {
			dailyTarget = goal.DailyTarget(now, i.svc.WeekStart())
		}
		out = append(out, goaldto.ProgressOutput{
			Category:    goal.Category,
			Period:      string(goal.Period),
			Target:      goal.Target(),
			Spent:       time.Duration(goal.SpentHours * float64(time.Hour)),
			Remaining:   goal.Remaining(),
			DailyTarget: dailyTarget,
			Achieved:    goal.Achieved,
			Today:       todayByCategory[goal.Category],
		})
	}
	return out, nil
}

func toGoalOutput(goal domain.Goal) goaldto.GoalOutput {
	return goaldto.GoalOutput{
		Category:    goal.Category,
		TargetHours: goal.TargetHours,
		Period:      string(goal.Period),
		SpentHours:  goal.SpentHours,
		Achieved:    goal.Achieved,
		PeriodStart: goal.PeriodStart,
	}
}
