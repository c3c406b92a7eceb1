package usecase

import (
	"context"
	"time"

	"studya/internal/modules/session/domain"
	sessiondto "studya/internal/modules/session/dto"
	sessionin "studya/internal/modules/session/port/in"
	"studya/internal/modules/session/service"
)

type Interactor struct {
	svc *service.HistoryService
}

func NewInteractor(svc *service.HistoryService) sessionin.Usecase {
	return &Interactor{svc: svc}
}

func (i *Interactor) ListRange(ctx context.Context, input sessiondto.RangeInput) ([]sessiondto.RecordOutput, error) {
	records, err := i.svc.ListRange(ctx, input.From, input.To)
	if err != nil {
		return nil, err
	}
	out := make([]sessiondto.RecordOutput, 0, len(records))
	for _, record := range records {
		out = append(out, toRecordOutput(record))
	}
	return out, nil
}

func (i *Interactor) DayTotals(ctx context.Context, day time.Time) (sessiondto.DayTotalsOutput, error) {
	totals, breakMinutes, err := i.svc.DayTotals(ctx, day)
	if err != nil {
		return sessiondto.DayTotalsOutput{}, err
	}
	out := sessiondto.DayTotalsOutput{
		Date:       day.Format("2006-01-02"),
		Categories: make([]sessiondto.CategoryTotalsOutput, 0, len(totals)),
		BreakMin:   breakMinutes,
	}
	for _, total := range totals {
		out.Categories = append(out.Categories, sessiondto.CategoryTotalsOutput{
			Category:  total.Category,
			Minutes:   total.Minutes,
			Pomodoros: total.Pomodoros,
			Words:     total.Words,
			Sessions:  total.Sessions,
		})
	}
	return out, nil
}

func toRecordOutput(record domain.Record) sessiondto.RecordOutput {
	return sessiondto.RecordOutput{
		ID:                 record.ID,
		Category:           record.Category,
		IsBreak:            record.IsBreak,
		Date:               record.Date,
		StartedAt:          record.StartedAt,
		EndedAt:            record.EndedAt,
		DurationMin:        record.DurationMin,
		PauseMin:           record.PauseMin,
		PomodorosCompleted: record.PomodorosCompleted,
		Difficulty:         record.Difficulty,
		Notes:              record.Notes,
		Completed:          record.Completed,
		Distractions:       entryTexts(record.Distractions),
		Reflections:        entryTexts(record.Reflections),
		CompletedTasks:     entryTexts(record.CompletedTasks),
		ModifiedFiles:      record.ModifiedFiles,
		OpenedFiles:        record.OpenedFiles,
		CreatedFiles:       record.CreatedFiles,
		CreatedLinks:       record.CreatedLinks,
		WordCount:          record.WordCount,
	}
}

func entryTexts(entries []domain.TimedEntry) []string {
	out := make([]string, 0, len(entries))
	for _, entry := range entries {
		out = append(out, entry.Text)
	}
	return out
}
