package domain_test

import (
	"testing"
	"time"

	"studya/internal/modules/timer/domain"
)

var base = time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)

func TestCountdownRecomputesFromAbsoluteTarget(t *testing.T) {
	t.Parallel()
	c := domain.Countdown{}
	c.Start(base, 25*time.Minute)

	if got := c.RemainingAt(base.Add(10 * time.Minute)); got != 15*time.Minute {
		t.Fatalf("expected 15m remaining, got %v", got)
	}
	// A huge tick gap (suspend) must not under- or over-count.
	if got := c.RemainingAt(base.Add(3 * time.Hour)); got != 0 {
		t.Fatalf("overdue countdown must clamp to 0, got %v", got)
	}
	if !c.Done(base.Add(25 * time.Minute)) {
		t.Fatalf("countdown must be done exactly at the target")
	}
	if c.Done(base.Add(24 * time.Minute)) {
		t.Fatalf("countdown must not be done before the target")
	}
}

func TestCountdownPauseFreezesRemaining(t *testing.T) {
	t.Parallel()
	c := domain.Countdown{}
	c.Start(base, 25*time.Minute)
	c.Pause(base.Add(5 * time.Minute))

	if got := c.RemainingAt(base.Add(2 * time.Hour)); got != 20*time.Minute {
		t.Fatalf("paused remaining must be frozen, got %v", got)
	}
	if c.Done(base.Add(2 * time.Hour)) {
		t.Fatalf("a paused countdown never completes")
	}

	resumeAt := base.Add(4 * time.Hour)
	c.Resume(resumeAt)
	if got := c.RemainingAt(resumeAt); got != 20*time.Minute {
		t.Fatalf("resume must restore the frozen remainder, got %v", got)
	}
	if got := c.TargetEnd; !got.Equal(resumeAt.Add(20 * time.Minute)) {
		t.Fatalf("resume must re-anchor the absolute target, got %v", got)
	}
}

func TestCountdownPauseResumeIdempotent(t *testing.T) {
	t.Parallel()
	c := domain.Countdown{}
	c.Start(base, 10*time.Minute)
	c.Resume(base.Add(time.Minute))
	if got := c.RemainingAt(base.Add(time.Minute)); got != 9*time.Minute {
		t.Fatalf("resume while running must be a no-op, got %v", got)
	}
	c.Pause(base.Add(2 * time.Minute))
	c.Pause(base.Add(5 * time.Minute))
	if c.Remaining != 8*time.Minute {
		t.Fatalf("second pause must be a no-op, got %v", c.Remaining)
	}
}

func TestModeValidate(t *testing.T) {
	t.Parallel()
	for _, mode := range []domain.Mode{domain.ModeInterval, domain.ModeStopwatch, domain.ModeGoal} {
		if err := mode.Validate(); err != nil {
			t.Fatalf("%s should be valid: %v", mode, err)
		}
	}
	if err := domain.Mode("countdown").Validate(); err == nil {
		t.Fatalf("unknown mode must fail")
	}
}
