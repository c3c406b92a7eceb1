package service

import (
	"context"
	"time"

	"studya/internal/modules/session/domain"
	sessionout "studya/internal/modules/session/port/out"
)

type HistoryService struct {
	projector sessionout.RecordProjector
}

func NewHistoryService(projector sessionout.RecordProjector) *HistoryService {
	return &HistoryService{projector: projector}
}

func (s *HistoryService) ListRange(ctx context.Context, from, to time.Time) ([]domain.Record, error) {
	return s.projector.ListRange(ctx, from, to)
}

// DayTotals aggregates the finalized records whose start date falls on day.
func (s *HistoryService) DayTotals(ctx context.Context, day time.Time) ([]domain.CategoryTotal, int, error) {
	start := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	records, err := s.projector.ListRange(ctx, start, start.AddDate(0, 0, 1))
	if err != nil {
		return nil, 0, err
	}
	totals, breakMinutes := domain.Totals(records)
	return totals, breakMinutes, nil
}
