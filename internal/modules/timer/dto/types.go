package dto

import "time"

type StartInput struct {
	Category string
	// Mode optionally switches the engine mode before starting.
	Mode string
}

type StatusOutput struct {
	Mode         string
	Active       bool
	Paused       bool
	OnBreak      bool
	Category     string
	SessionID    string
	StartedAt    time.Time
	Elapsed      time.Duration
	Remaining    time.Duration
	Pomodoros    int
	WorkCycles   int
	Distractions int
	WordCount    int
}

type EventOutput struct {
	Kind     string
	Category string
	At       time.Time
}

type TickOutput struct {
	Status StatusOutput
	Events []EventOutput
}

type EndOutput struct {
	Ended       bool
	SessionID   string
	Category    string
	DurationMin int
	NotePath    string
}

type LineNoteInput struct {
	File       string
	Line       string
	Tag        string
	Note       string
	LineNumber int
}

type FileEventInput struct {
	Path      string
	WordCount int
	LinkCount int
}
