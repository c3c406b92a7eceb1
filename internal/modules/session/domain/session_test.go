package domain_test

import (
	"errors"
	"testing"
	"time"

	"studya/internal/modules/session/domain"
	apperrors "studya/internal/platform/errors"
)

var base = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func at(minutes int) time.Time {
	return base.Add(time.Duration(minutes) * time.Minute)
}

func TestPauseExcludedFromDuration(t *testing.T) {
	t.Parallel()
	s := domain.NewSession("s-1", "Study", "Break", at(0))
	s.Pause(at(5))
	s.Resume(at(8))
	record, err := s.End(at(30))
	if err != nil {
		t.Fatalf("end session: %v", err)
	}
	if record.DurationMin != 27 {
		t.Fatalf("expected 27 tracked minutes, got %d", record.DurationMin)
	}
	if record.PauseMin != 3 {
		t.Fatalf("expected 3 paused minutes, got %d", record.PauseMin)
	}
	if record.Date != "2026-03-02" {
		t.Fatalf("record date must be the start date, got %s", record.Date)
	}
}

func TestDurationMonotonicWhileRunning(t *testing.T) {
	t.Parallel()
	s := domain.NewSession("s-1", "Study", "Break", at(0))
	previous := time.Duration(-1)
	for minutes := 0; minutes <= 60; minutes += 7 {
		elapsed := s.Elapsed(at(minutes))
		if elapsed < previous {
			t.Fatalf("elapsed went backward at %d minutes: %v < %v", minutes, elapsed, previous)
		}
		previous = elapsed
	}
}

func TestPauseNeutrality(t *testing.T) {
	t.Parallel()
	s := domain.NewSession("s-1", "Study", "Break", at(0))
	before := s.Elapsed(at(10))
	s.Pause(at(10))
	during := s.Elapsed(at(40))
	s.Resume(at(40))
	after := s.Elapsed(at(40))
	if before != during || before != after {
		t.Fatalf("pause must be duration-neutral: before=%v during=%v after=%v", before, during, after)
	}
}

func TestPauseAndResumeAreIdempotent(t *testing.T) {
	t.Parallel()
	s := domain.NewSession("s-1", "Study", "Break", at(0))
	s.Resume(at(1))
	if s.TotalPause != 0 {
		t.Fatalf("resume without pause must not accrue pause time, got %v", s.TotalPause)
	}
	s.Pause(at(5))
	s.Pause(at(9))
	s.Resume(at(10))
	if s.TotalPause != 5*time.Minute {
		t.Fatalf("second pause must be a no-op; expected 5m pause, got %v", s.TotalPause)
	}
}

func TestClockSkewClampsToZero(t *testing.T) {
	t.Parallel()
	s := domain.NewSession("s-1", "Study", "Break", at(10))
	if got := s.Elapsed(at(2)); got != 0 {
		t.Fatalf("backward clock must clamp elapsed to 0, got %v", got)
	}
	record, err := s.End(at(2))
	if err != nil {
		t.Fatalf("end session: %v", err)
	}
	if record.DurationMin != 0 {
		t.Fatalf("backward clock must clamp record duration to 0, got %d", record.DurationMin)
	}
}

func TestEndIsOneWay(t *testing.T) {
	t.Parallel()
	s := domain.NewSession("s-1", "Study", "Break", at(0))
	first, err := s.End(at(25))
	if err != nil {
		t.Fatalf("end session: %v", err)
	}
	if _, err := s.End(at(30)); !errors.Is(err, apperrors.ErrSessionFinalized) {
		t.Fatalf("second end must be rejected, got %v", err)
	}
	s.AddDistraction(at(26), "late entry")
	s.TrackModifiedFile("notes/late.md")
	s.UpdateWordCount("notes/late.md", 500)
	if got := s.DurationMinutes(at(90)); got != first.DurationMin {
		t.Fatalf("finalized duration must not change: %d vs %d", got, first.DurationMin)
	}
	if len(s.Distractions) != 0 || len(s.ModifiedFiles) != 0 || s.WordCount != 0 {
		t.Fatalf("mutators after finalize must be rejected")
	}
}

func TestWordCountDeltaNeverNegative(t *testing.T) {
	t.Parallel()
	s := domain.NewSession("s-1", "Study", "Break", at(0))
	s.UpdateWordCount("note.md", 100)
	if s.WordCount != 0 {
		t.Fatalf("first observation sets the baseline only, got %d", s.WordCount)
	}
	s.UpdateWordCount("note.md", 150)
	if s.WordCount != 50 {
		t.Fatalf("expected +50 words, got %d", s.WordCount)
	}
	s.UpdateWordCount("note.md", 120)
	if s.WordCount != 50 {
		t.Fatalf("shrinking file must not subtract, got %d", s.WordCount)
	}
	s.UpdateWordCount("note.md", 140)
	if s.WordCount != 70 {
		t.Fatalf("expected +20 words from the lowered baseline, got %d", s.WordCount)
	}
}

func TestLinkDeltasBecomeEnumerableIdentifiers(t *testing.T) {
	t.Parallel()
	s := domain.NewSession("s-1", "Study", "Break", at(0))
	s.UpdateLinkCount("note.md", 2)
	if len(s.CreatedLinks) != 0 {
		t.Fatalf("first observation sets the baseline only, got %v", s.CreatedLinks)
	}
	s.UpdateLinkCount("note.md", 4)
	s.UpdateLinkCount("note.md", 3)
	s.UpdateLinkCount("note.md", 4)
	want := []string{"note.md:3", "note.md:4"}
	if len(s.CreatedLinks) != len(want) {
		t.Fatalf("expected %v, got %v", want, s.CreatedLinks)
	}
	for i, id := range want {
		if s.CreatedLinks[i] != id {
			t.Fatalf("expected %v, got %v", want, s.CreatedLinks)
		}
	}
}

func TestFileTrackingIsIdempotentAndEmptyEntriesDiscarded(t *testing.T) {
	t.Parallel()
	s := domain.NewSession("s-1", "Study", "Break", at(0))
	s.TrackModifiedFile("a.md")
	s.TrackModifiedFile("a.md")
	s.TrackOpenedFile("b.md")
	s.TrackCreatedFile("c.md")
	s.TrackCreatedFile("")
	if len(s.ModifiedFiles) != 1 || len(s.OpenedFiles) != 1 || len(s.CreatedFiles) != 1 {
		t.Fatalf("set insertion must be idempotent: %v %v %v", s.ModifiedFiles, s.OpenedFiles, s.CreatedFiles)
	}
	s.AddDistraction(at(1), "   ")
	s.AddReflection(at(1), "")
	s.AddLineNote(at(1), "a.md", "line", "tag", "  ", 3)
	if len(s.Distractions) != 0 || len(s.Reflections) != 0 || len(s.LineNotes) != 0 {
		t.Fatalf("whitespace-only entries must be discarded")
	}
}

func TestBreakDerivedFromCategory(t *testing.T) {
	t.Parallel()
	if s := domain.NewSession("s-1", "Break", "Break", at(0)); !s.IsBreak {
		t.Fatalf("break category must mark the session as a break")
	}
	if s := domain.NewSession("s-2", "Study", "Break", at(0)); s.IsBreak {
		t.Fatalf("non-break category must not mark the session as a break")
	}
}

func TestRecordSortsSets(t *testing.T) {
	t.Parallel()
	s := domain.NewSession("s-1", "Study", "Break", at(0))
	s.TrackModifiedFile("z.md")
	s.TrackModifiedFile("a.md")
	record, err := s.End(at(10))
	if err != nil {
		t.Fatalf("end session: %v", err)
	}
	if record.ModifiedFiles[0] != "a.md" || record.ModifiedFiles[1] != "z.md" {
		t.Fatalf("record sets must be sorted, got %v", record.ModifiedFiles)
	}
}
