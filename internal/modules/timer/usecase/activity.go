package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	sessiondomain "studya/internal/modules/session/domain"
	"studya/internal/modules/timer/dto"
	apperrors "studya/internal/platform/errors"
)

// Journaling and activity-observer methods. All of them follow the same
// shape: events arriving with no live session are silently dropped, and
// activity events are additionally dropped during breaks and for paths
// outside the tracked prefixes.

func (i *Interactor) AddDistraction(ctx context.Context, text string) error {
	return i.withSession(ctx, func(s sessionRef) {
		s.session.AddDistraction(s.now, text)
	})
}

func (i *Interactor) AddReflection(ctx context.Context, text string) error {
	return i.withSession(ctx, func(s sessionRef) {
		s.session.AddReflection(s.now, text)
	})
}

func (i *Interactor) AddCompletedTask(ctx context.Context, text string) error {
	return i.withSession(ctx, func(s sessionRef) {
		s.session.AddCompletedTask(s.now, text)
	})
}

func (i *Interactor) AddLineNote(ctx context.Context, input dto.LineNoteInput) error {
	return i.withSession(ctx, func(s sessionRef) {
		s.session.AddLineNote(s.now, input.File, input.Line, input.Tag, input.Note, input.LineNumber)
	})
}

func (i *Interactor) SetNotes(ctx context.Context, text string) error {
	return i.withSession(ctx, func(s sessionRef) {
		if s.session.Finalized() {
			return
		}
		s.session.Notes = strings.TrimSpace(text)
	})
}

func (i *Interactor) SetDifficulty(ctx context.Context, level int) error {
	if level < 1 || level > 5 {
		return fmt.Errorf("difficulty %d: %w", level, apperrors.ErrInvalidInput)
	}
	return i.withSession(ctx, func(s sessionRef) {
		if s.session.Finalized() {
			return
		}
		s.session.Difficulty = level
	})
}

func (i *Interactor) FileModified(ctx context.Context, input dto.FileEventInput) error {
	return i.withSession(ctx, func(s sessionRef) {
		if s.session.IsBreak || !i.settings.PathTracked(input.Path) {
			return
		}
		s.session.TrackModifiedFile(input.Path)
		s.session.UpdateWordCount(input.Path, input.WordCount)
		s.session.UpdateLinkCount(input.Path, input.LinkCount)
	})
}

func (i *Interactor) FileOpened(ctx context.Context, path string) error {
	return i.withSession(ctx, func(s sessionRef) {
		if s.session.IsBreak || !i.settings.PathTracked(path) {
			return
		}
		s.session.TrackOpenedFile(path)
	})
}

func (i *Interactor) FileCreated(ctx context.Context, path string) error {
	return i.withSession(ctx, func(s sessionRef) {
		if s.session.IsBreak || !i.settings.PathTracked(path) {
			return
		}
		s.session.TrackCreatedFile(path)
	})
}

type sessionRef struct {
	session *sessiondomain.Session
	now     time.Time
}

func (i *Interactor) withSession(ctx context.Context, apply func(sessionRef)) error {
	state, err := i.load(ctx)
	if err != nil {
		return err
	}
	if !state.Active() {
		return nil
	}
	apply(sessionRef{session: state.Session, now: i.svc.Now()})
	return i.states.Save(ctx, state)
}
