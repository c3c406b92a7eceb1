package service

import (
	"context"
	"time"

	sessiondomain "studya/internal/modules/session/domain"
	sessionout "studya/internal/modules/session/port/out"
	"studya/internal/platform/clock"
	"studya/internal/platform/id"
)

// TimerService owns session construction and finalization: it is the only
// place a Session is created or handed to durable storage.
type TimerService struct {
	clk       clock.Clock
	idGen     id.Generator
	records   sessionout.RecordStore
	projector sessionout.RecordProjector
}

func NewTimerService(clk clock.Clock, idGen id.Generator, records sessionout.RecordStore, projector sessionout.RecordProjector) *TimerService {
	return &TimerService{clk: clk, idGen: idGen, records: records, projector: projector}
}

func (s *TimerService) Now() time.Time {
	return s.clk.Now()
}

func (s *TimerService) NewSession(category, breakCategory string) *sessiondomain.Session {
	return sessiondomain.NewSession(s.idGen.New(), category, breakCategory, s.clk.Now())
}

// Finalize ends the session and persists its record to the vault note store
// and the query projection. The record is appended exactly once.
func (s *TimerService) Finalize(ctx context.Context, session *sessiondomain.Session, completed bool) (sessiondomain.Record, string, error) {
	if completed {
		session.Completed = true
	}
	record, err := session.End(s.clk.Now())
	if err != nil {
		return sessiondomain.Record{}, "", err
	}
	path, err := s.records.Save(ctx, record)
	if err != nil {
		return sessiondomain.Record{}, "", err
	}
	if err := s.projector.Upsert(ctx, record); err != nil {
		return sessiondomain.Record{}, "", err
	}
	return record, path, nil
}
