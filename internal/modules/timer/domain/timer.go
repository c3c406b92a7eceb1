package domain

import (
	"fmt"
	"time"

	sessiondomain "studya/internal/modules/session/domain"
)

type Mode string

const (
	// ModeInterval alternates fixed work and break countdowns (Pomodoro).
	ModeInterval Mode = "interval"
	// ModeStopwatch counts tracked time up with no target.
	ModeStopwatch Mode = "stopwatch"
	// ModeGoal counts down the category's full recurring goal budget.
	ModeGoal Mode = "goal"
)

func (m Mode) Validate() error {
	switch m {
	case ModeInterval, ModeStopwatch, ModeGoal:
		return nil
	default:
		return fmt.Errorf("unsupported timer mode %q", string(m))
	}
}

// Countdown tracks a target as an absolute wall-clock end time while running
// and as a frozen remainder while paused. Remaining time is always recomputed
// from TargetEnd, never decremented per tick, so delayed or coarse ticks
// (process suspend included) cannot drift the clock.
type Countdown struct {
	TargetEnd time.Time     `json:"target_end"`
	Remaining time.Duration `json:"remaining"`
	Running   bool          `json:"running"`
}

func (c *Countdown) Start(now time.Time, d time.Duration) {
	c.TargetEnd = now.Add(d)
	c.Remaining = d
	c.Running = true
}

func (c *Countdown) Pause(now time.Time) {
	if !c.Running {
		return
	}
	c.Remaining = c.RemainingAt(now)
	c.Running = false
}

// Resume re-anchors the absolute target at now + remaining, which keeps the
// countdown correct across pauses of any length.
func (c *Countdown) Resume(now time.Time) {
	if c.Running {
		return
	}
	c.TargetEnd = now.Add(c.Remaining)
	c.Running = true
}

func (c Countdown) RemainingAt(now time.Time) time.Duration {
	if !c.Running {
		return c.Remaining
	}
	remaining := c.TargetEnd.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (c Countdown) Done(now time.Time) bool {
	return c.Running && !now.Before(c.TargetEnd)
}

// State is the whole engine: the mode, the countdown, the interval cycle
// counter, and the single live session. It round-trips through the state
// store so the engine survives process restarts.
type State struct {
	Mode             Mode                   `json:"mode"`
	Countdown        Countdown              `json:"countdown"`
	WorkCycles       int                    `json:"work_cycles"`
	LastWorkCategory string                 `json:"last_work_category"`
	Session          *sessiondomain.Session `json:"session"`
	// CarriedElapsed accumulates finished stopwatch stints across category
	// switches so the visible clock survives each replacement session.
	CarriedElapsed time.Duration `json:"carried_elapsed"`
}

func (s State) Active() bool {
	return s.Session != nil && !s.Session.Finalized()
}

type EventKind string

const (
	EventIntervalComplete EventKind = "interval-complete"
	EventBreakComplete    EventKind = "break-complete"
	EventGoalAchieved     EventKind = "goal-achieved"
)

// Event is one discrete signal for the presentation layer; the engine never
// formats or displays these itself.
type Event struct {
	Kind     EventKind `json:"kind"`
	Category string    `json:"category"`
	At       time.Time `json:"at"`
}
