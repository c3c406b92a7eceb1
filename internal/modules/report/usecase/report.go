package usecase

import (
	"context"
	"time"

	"studya/internal/modules/report/domain"
	reportdto "studya/internal/modules/report/dto"
	reportin "studya/internal/modules/report/port/in"
	"studya/internal/modules/report/service"
)

type Interactor struct {
	svc *service.ReportService
}

func NewInteractor(svc *service.ReportService) reportin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) Daily(ctx context.Context, day time.Time) (reportdto.DailyReportOutput, error) {
	if day.IsZero() {
		day = i.svc.Now()
	}
	summary, path, err := i.svc.Daily(ctx, day)
	if err != nil {
		return reportdto.DailyReportOutput{}, err
	}
	return reportdto.DailyReportOutput{
		Date:         summary.Date,
		Path:         path,
		TotalMinutes: summary.TotalMinutes,
		BreakMinutes: summary.BreakMinutes,
		Pomodoros:    summary.Pomodoros,
		Words:        summary.Words,
		Distractions: summary.Distractions,
		Sessions:     summary.Sessions,
		Categories:   toCategoryLines(summary.Categories),
		Goals:        toGoalLines(summary.Goals),
	}, nil
}

func (i *Interactor) Weekly(ctx context.Context, day time.Time) (reportdto.WeeklyReportOutput, error) {
	if day.IsZero() {
		day = i.svc.Now()
	}
	summary, path, err := i.svc.Weekly(ctx, day)
	if err != nil {
		return reportdto.WeeklyReportOutput{}, err
	}
	return reportdto.WeeklyReportOutput{
		Year:         summary.Year,
		Week:         summary.Week,
		From:         summary.From,
		To:           summary.To,
		Path:         path,
		TotalMinutes: summary.TotalMinutes,
		BreakMinutes: summary.BreakMinutes,
		Pomodoros:    summary.Pomodoros,
		Words:        summary.Words,
		Sessions:     summary.Sessions,
		Categories:   toCategoryLines(summary.Categories),
		Goals:        toGoalLines(summary.Goals),
	}, nil
}

func toCategoryLines(lines []domain.CategoryLine) []reportdto.CategoryLineOutput {
	out := make([]reportdto.CategoryLineOutput, 0, len(lines))
	for _, line := range lines {
		out = append(out, reportdto.CategoryLineOutput{
			Category:  line.Category,
			Minutes:   line.Minutes,
			Sessions:  line.Sessions,
			Pomodoros: line.Pomodoros,
			Words:     line.Words,
		})
	}
	return out
}

func toGoalLines(lines []domain.GoalLine) []reportdto.GoalLineOutput {
	out := make([]reportdto.GoalLineOutput, 0, len(lines))
	for _, line := range lines {
		out = append(out, reportdto.GoalLineOutput{
			Category:     line.Category,
			Period:       line.Period,
			TargetMin:    line.TargetMin,
			SpentMin:     line.SpentMin,
			RemainingMin: line.RemainingMin,
			DailyMin:     line.DailyMin,
			TodayMin:     line.TodayMin,
			Achieved:     line.Achieved,
		})
	}
	return out
}
