package domain

import (
	"fmt"
	"strings"
	"time"
)

type Period string

const (
	PeriodDaily  Period = "daily"
	PeriodWeekly Period = "weekly"
)

func (p Period) Validate() error {
	switch p {
	case PeriodDaily, PeriodWeekly:
		return nil
	default:
		return fmt.Errorf("unsupported goal period %q", string(p))
	}
}

// Goal is one recurring per-category time budget. SpentHours and Achieved
// describe the current period only and reset at the period boundary;
// PeriodStart keeps the reset idempotent when checked more than once.
type Goal struct {
	Category    string    `yaml:"category"`
	TargetHours float64   `yaml:"target_hours"`
	Period      Period    `yaml:"period"`
	SpentHours  float64   `yaml:"spent_hours"`
	Achieved    bool      `yaml:"achieved"`
	PeriodStart time.Time `yaml:"period_start"`
}

func (g Goal) Validate() error {
	if strings.TrimSpace(g.Category) == "" {
		return fmt.Errorf("goal category is required")
	}
	if g.TargetHours < 0 {
		return fmt.Errorf("goal target must be non-negative")
	}
	return g.Period.Validate()
}

// Accrue adds tracked time toward the current period and reports whether this
// accrual flipped the goal to achieved. Achieved is monotonic within a period,
// so the flip fires at most once per period.
func (g *Goal) Accrue(d time.Duration) bool {
	g.SpentHours += d.Hours()
	if !g.Achieved && g.SpentHours >= g.TargetHours {
		g.Achieved = true
		return true
	}
	return false
}

// ResetIfNewPeriod zeroes the period accumulators when now falls in a later
// period than the recorded one. Calling it repeatedly within one period is a
// no-op.
func (g *Goal) ResetIfNewPeriod(now time.Time, weekStart time.Weekday) bool {
	current := PeriodStartAt(now, g.Period, weekStart)
	if !g.PeriodStart.Before(current) {
		return false
	}
	g.SpentHours = 0
	g.Achieved = false
	g.PeriodStart = current
	return true
}

func (g Goal) Remaining() time.Duration {
	remaining := g.TargetHours - g.SpentHours
	if remaining < 0 {
		return 0
	}
	return time.Duration(remaining * float64(time.Hour))
}

func (g Goal) Target() time.Duration {
	return time.Duration(g.TargetHours * float64(time.Hour))
}

// DailyTarget prorates the remaining weekly budget evenly across the days
// left in the period. Daily goals prorate to their own remainder.
func (g Goal) DailyTarget(now time.Time, weekStart time.Weekday) time.Duration {
	if g.Period != PeriodWeekly {
		return g.Remaining()
	}
	return g.Remaining() / time.Duration(DaysRemaining(now, weekStart))
}

// PeriodStartAt returns midnight opening the period that contains now.
func PeriodStartAt(now time.Time, period Period, weekStart time.Weekday) time.Time {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	if period != PeriodWeekly {
		return midnight
	}
	back := (int(now.Weekday()) - int(weekStart) + 7) % 7
	return midnight.AddDate(0, 0, -back)
}

// DaysRemaining counts today through the last day of the week period,
// inclusive: 7 on the week-start day, 1 on the day before the next boundary,
// never 0.
func DaysRemaining(now time.Time, weekStart time.Weekday) int {
	diff := (int(weekStart) - int(now.Weekday()) + 7) % 7
	return (diff+6)%7 + 1
}
