package dto

import "time"

type RangeInput struct {
	From time.Time
	To   time.Time
}

type RecordOutput struct {
	ID                 string
	Category           string
	IsBreak            bool
	Date               string
	StartedAt          time.Time
	EndedAt            time.Time
	DurationMin        int
	PauseMin           int
	PomodorosCompleted int
	Difficulty         int
	Notes              string
	Completed          bool
	Distractions       []string
	Reflections        []string
	CompletedTasks     []string
	ModifiedFiles      []string
	OpenedFiles        []string
	CreatedFiles       []string
	CreatedLinks       []string
	WordCount          int
	NotePath           string
}

type CategoryTotalsOutput struct {
	Category  string
	Minutes   int
	Pomodoros int
	Words     int
	Sessions  int
}

type DayTotalsOutput struct {
	Date       string
	Categories []CategoryTotalsOutput
	BreakMin   int
}
