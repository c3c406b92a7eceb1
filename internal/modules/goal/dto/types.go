package dto

import "time"

type SetInput struct {
	Category    string
	TargetHours float64
	Period      string
}

type GoalOutput struct {
	Category    string
	TargetHours float64
	Period      string
	SpentHours  float64
	Achieved    bool
	PeriodStart time.Time
}

type AccrueInput struct {
	Category string
	Duration time.Duration
}

type AccrueOutput struct {
	Accrued      bool
	JustAchieved bool
}

type ProgressInput struct {
	// Category filters to one category; empty means every goaled category.
	Category string
	// LiveCategory/LiveElapsed fold the currently running session into the
	// today column without touching the ledger.
	LiveCategory string
	LiveElapsed  time.Duration
}

type ProgressOutput struct {
	Category    string
	Period      string
	Target      time.Duration
	Spent       time.Duration
	Remaining   time.Duration
	DailyTarget time.Duration
	Achieved    bool
	Today       time.Duration
}
