package service

import (
	"context"
	"time"

	goaldto "studya/internal/modules/goal/dto"
	goalin "studya/internal/modules/goal/port/in"
	"studya/internal/modules/report/domain"
	reportout "studya/internal/modules/report/port/out"
	sessionout "studya/internal/modules/session/port/out"
	"studya/internal/platform/clock"
)

// ReportService assembles report summaries from the session projection and
// the goal ledger, then hands them to the store for rendering.
type ReportService struct {
	clk       clock.Clock
	projector sessionout.RecordProjector
	goals     goalin.Usecase
	store     reportout.ReportStore
	weekStart time.Weekday
}

func NewReportService(clk clock.Clock, projector sessionout.RecordProjector, goals goalin.Usecase, store reportout.ReportStore, weekStart time.Weekday) *ReportService {
	return &ReportService{clk: clk, projector: projector, goals: goals, store: store, weekStart: weekStart}
}

func (s *ReportService) Daily(ctx context.Context, day time.Time) (domain.DailySummary, string, error) {
	from := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	records, err := s.projector.ListRange(ctx, from, from.AddDate(0, 0, 1))
	if err != nil {
		return domain.DailySummary{}, "", err
	}
	summary := domain.BuildDaily(from.Format("2006-01-02"), records)
	summary.Goals, err = s.goalLines(ctx)
	if err != nil {
		return domain.DailySummary{}, "", err
	}
	path, err := s.store.SaveDaily(ctx, summary)
	if err != nil {
		return domain.DailySummary{}, "", err
	}
	return summary, path, nil
}

func (s *ReportService) Weekly(ctx context.Context, day time.Time) (domain.WeeklySummary, string, error) {
	midnight := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	back := (int(day.Weekday()) - int(s.weekStart) + 7) % 7
	weekStart := midnight.AddDate(0, 0, -back)

	records, err := s.projector.ListRange(ctx, weekStart, weekStart.AddDate(0, 0, 7))
	if err != nil {
		return domain.WeeklySummary{}, "", err
	}
	summary := domain.BuildWeekly(weekStart, records)
	summary.Goals, err = s.goalLines(ctx)
	if err != nil {
		return domain.WeeklySummary{}, "", err
	}
	path, err := s.store.SaveWeekly(ctx, summary)
	if err != nil {
		return domain.WeeklySummary{}, "", err
	}
	return summary, path, nil
}

func (s *ReportService) Now() time.Time {
	return s.clk.Now()
}

func (s *ReportService) goalLines(ctx context.Context) ([]domain.GoalLine, error) {
	progress, err := s.goals.Progress(ctx, goaldto.ProgressInput{})
	if err != nil {
		return nil, err
	}
	lines := make([]domain.GoalLine, 0, len(progress))
	for _, row := range progress {
		lines = append(lines, domain.GoalLine{
			Category:     row.Category,
			Period:       row.Period,
			TargetMin:    int(row.Target.Minutes()),
			SpentMin:     int(row.Spent.Minutes()),
			RemainingMin: int(row.Remaining.Minutes()),
			DailyMin:     int(row.DailyTarget.Minutes()),
			TodayMin:     int(row.Today.Minutes()),
			Achieved:     row.Achieved,
		})
	}
	return lines, nil
}
