package domain

import "time"

// Record is the immutable finalized projection of a Session: sets become
// sorted slices and the date is the session's start date, so sessions that
// cross midnight are attributed to the day they began.
type Record struct {
	SchemaVersion      int          `json:"schema_version"`
	ID                 string       `json:"id"`
	Category           string       `json:"category"`
	IsBreak            bool         `json:"is_break"`
	Date               string       `json:"date"`
	StartedAt          time.Time    `json:"started_at"`
	EndedAt            time.Time    `json:"ended_at"`
	DurationMin        int          `json:"duration_minutes"`
	PauseMin           int          `json:"pause_minutes"`
	PomodorosCompleted int          `json:"pomodoros_completed"`
	Difficulty         int          `json:"difficulty"`
	Notes              string       `json:"notes"`
	Completed          bool         `json:"completed"`
	Distractions       []TimedEntry `json:"distractions"`
	Reflections        []TimedEntry `json:"reflections"`
	CompletedTasks     []TimedEntry `json:"completed_tasks"`
	LineNotes          []LineNote   `json:"line_notes"`
	ModifiedFiles      []string     `json:"modified_files"`
	OpenedFiles        []string     `json:"opened_files"`
	CreatedFiles       []string     `json:"created_files"`
	CreatedLinks       []string     `json:"created_links"`
	WordCount          int          `json:"word_count"`
}
