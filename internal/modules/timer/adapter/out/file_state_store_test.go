package out

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	sessiondomain "studya/internal/modules/session/domain"
	"studya/internal/modules/timer/domain"
)

func TestStateRoundTripsThroughDisk(t *testing.T) {
	t.Parallel()

	store := NewFileStateStore(filepath.Join(t.TempDir(), "state.json"))
	ctx := context.Background()

	started := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	session := sessiondomain.NewSession("s1", "Study", "Break", started)
	session.UpdateWordCount("notes/a.md", 100)
	state := domain.State{
		Mode:             domain.ModeInterval,
		WorkCycles:       3,
		LastWorkCategory: "Study",
		Session:          session,
		CarriedElapsed:   10 * time.Minute,
	}
	state.Countdown.Start(started, 25*time.Minute)

	if err := store.Save(ctx, state); err != nil {
		t.Fatalf("Save: %v", err)
	}
	loaded, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if loaded.Mode != domain.ModeInterval || loaded.WorkCycles != 3 || loaded.CarriedElapsed != 10*time.Minute {
		t.Fatalf("engine fields lost: %+v", loaded)
	}
	if !loaded.Countdown.TargetEnd.Equal(started.Add(25 * time.Minute)) {
		t.Fatalf("countdown target lost: %+v", loaded.Countdown)
	}
	if loaded.Session == nil || loaded.Session.ID != "s1" {
		t.Fatalf("session lost: %+v", loaded.Session)
	}
	// Word baselines must survive the restart or deltas double-count.
	if loaded.Session.WordBaselines["notes/a.md"] != 100 {
		t.Fatalf("baselines lost: %+v", loaded.Session.WordBaselines)
	}
}

func TestLoadWithoutFileReturnsIdleState(t *testing.T) {
	t.Parallel()

	store := NewFileStateStore(filepath.Join(t.TempDir(), "state.json"))
	state, err := store.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if state.Active() {
		t.Fatalf("expected idle state, got %+v", state)
	}
}

func TestClearRemovesStateAndIsIdempotent(t *testing.T) {
	t.Parallel()

	store := NewFileStateStore(filepath.Join(t.TempDir(), "state.json"))
	ctx := context.Background()
	if err := store.Save(ctx, domain.State{Mode: domain.ModeStopwatch}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	if err := store.Clear(ctx); err != nil {
		t.Fatalf("second Clear: %v", err)
	}
	state, err := store.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if state.Mode != "" {
		t.Fatalf("expected zero state after clear, got %+v", state)
	}
}
