package domain

import (
	"fmt"
	"sort"
	"strings"
	"time"

	apperrors "studya/internal/platform/errors"
)

const SchemaVersion = 1

// TimedEntry is one append-only journal item (distraction, reflection,
// completed task) captured at a point in time.
type TimedEntry struct {
	At   time.Time `json:"at"`
	Text string    `json:"text"`
}

// LineNote anchors a note to a specific line of a vault file.
type LineNote struct {
	At         time.Time `json:"at"`
	File       string    `json:"file"`
	Line       string    `json:"line"`
	Tag        string    `json:"tag"`
	Note       string    `json:"note"`
	LineNumber int       `json:"line_number"`
}

// Session is one continuous (possibly paused) unit of tracked time under a
// single category. It is mutable until End, after which every mutator is
// rejected with ErrSessionFinalized. The zero time.Time value stands for
// "absent" on EndedAt and PauseStartedAt.
type Session struct {
	ID                 string        `json:"id"`
	Category           string        `json:"category"`
	IsBreak            bool          `json:"is_break"`
	StartedAt          time.Time     `json:"started_at"`
	EndedAt            time.Time     `json:"ended_at"`
	PauseStartedAt     time.Time     `json:"pause_started_at"`
	TotalPause         time.Duration `json:"total_pause"`
	PomodorosCompleted int           `json:"pomodoros_completed"`
	Difficulty         int           `json:"difficulty"`
	Notes              string        `json:"notes"`
	Completed          bool          `json:"completed"`

	Distractions   []TimedEntry `json:"distractions"`
	Reflections    []TimedEntry `json:"reflections"`
	CompletedTasks []TimedEntry `json:"completed_tasks"`
	LineNotes      []LineNote   `json:"line_notes"`

	ModifiedFiles []string `json:"modified_files"`
	OpenedFiles   []string `json:"opened_files"`
	CreatedFiles  []string `json:"created_files"`
	CreatedLinks  []string `json:"created_links"`

	WordCount int `json:"word_count"`

	// Per-path baselines used to turn absolute counts into deltas. They are
	// carried between process invocations but never appear in the Record.
	WordBaselines map[string]int `json:"word_baselines"`
	LinkBaselines map[string]int `json:"link_baselines"`
}

func NewSession(id, category, breakCategory string, startedAt time.Time) *Session {
	return &Session{
		ID:            id,
		Category:      category,
		IsBreak:       category == breakCategory,
		StartedAt:     startedAt,
		WordBaselines: map[string]int{},
		LinkBaselines: map[string]int{},
	}
}

func (s *Session) Finalized() bool {
	return !s.EndedAt.IsZero()
}

func (s *Session) Paused() bool {
	return !s.PauseStartedAt.IsZero()
}

// Pause records the start of a pause. Pausing an already-paused session is a
// no-op.
func (s *Session) Pause(now time.Time) {
	if s.Finalized() || s.Paused() {
		return
	}
	s.PauseStartedAt = now
}

// Resume closes the open pause and folds it into TotalPause. Resuming a
// session that is not paused is a no-op.
func (s *Session) Resume(now time.Time) {
	if s.Finalized() || !s.Paused() {
		return
	}
	if d := now.Sub(s.PauseStartedAt); d > 0 {
		s.TotalPause += d
	}
	s.PauseStartedAt = time.Time{}
}

// Elapsed returns the precise tracked duration at now: wall time minus the
// open pause and every accumulated pause, clamped to zero.
func (s *Session) Elapsed(now time.Time) time.Duration {
	end := now
	if s.Finalized() {
		end = s.EndedAt
	}
	return Elapsed(s.StartedAt, end, s.PauseStartedAt, s.TotalPause)
}

// DurationMinutes returns the rounded-to-the-minute tracked duration at now.
func (s *Session) DurationMinutes(now time.Time) int {
	end := now
	if s.Finalized() {
		end = s.EndedAt
	}
	return ElapsedMinutes(s.StartedAt, end, s.PauseStartedAt, s.TotalPause)
}

func (s *Session) AddDistraction(now time.Time, text string) {
	if entry, ok := s.entry(now, text); ok {
		s.Distractions = append(s.Distractions, entry)
	}
}

func (s *Session) AddReflection(now time.Time, text string) {
	if entry, ok := s.entry(now, text); ok {
		s.Reflections = append(s.Reflections, entry)
	}
}

func (s *Session) AddCompletedTask(now time.Time, text string) {
	if entry, ok := s.entry(now, text); ok {
		s.CompletedTasks = append(s.CompletedTasks, entry)
	}
}

func (s *Session) entry(now time.Time, text string) (TimedEntry, bool) {
	text = strings.TrimSpace(text)
	if s.Finalized() || text == "" {
		return TimedEntry{}, false
	}
	return TimedEntry{At: now, Text: text}, true
}

func (s *Session) AddLineNote(now time.Time, file, line, tag, note string, lineNumber int) {
	if s.Finalized() || strings.TrimSpace(note) == "" {
		return
	}
	s.LineNotes = append(s.LineNotes, LineNote{
		At:         now,
		File:       file,
		Line:       line,
		Tag:        tag,
		Note:       note,
		LineNumber: lineNumber,
	})
}

func (s *Session) TrackModifiedFile(path string) {
	if s.Finalized() {
		return
	}
	s.ModifiedFiles = insertUnique(s.ModifiedFiles, path)
}

func (s *Session) TrackOpenedFile(path string) {
	if s.Finalized() {
		return
	}
	s.OpenedFiles = insertUnique(s.OpenedFiles, path)
}

func (s *Session) TrackCreatedFile(path string) {
	if s.Finalized() {
		return
	}
	s.CreatedFiles = insertUnique(s.CreatedFiles, path)
}

// UpdateWordCount folds an absolute word count observation for path into the
// session total. The first observation only sets the baseline. Later
// observations add positive deltas; shrinking files move the baseline down
// without subtracting, so WordCount approximates words written, not net size.
func (s *Session) UpdateWordCount(path string, currentCount int) {
	if s.Finalized() {
		return
	}
	if s.WordBaselines == nil {
		s.WordBaselines = map[string]int{}
	}
	previous, seen := s.WordBaselines[path]
	if seen && currentCount > previous {
		s.WordCount += currentCount - previous
	}
	s.WordBaselines[path] = currentCount
}

// UpdateLinkCount is the baseline/delta mechanism for wikilink counts. Each
// unit of positive delta becomes one synthetic path:index identifier so new
// links stay individually enumerable in the finalized record.
func (s *Session) UpdateLinkCount(path string, currentCount int) {
	if s.Finalized() {
		return
	}
	if s.LinkBaselines == nil {
		s.LinkBaselines = map[string]int{}
	}
	previous, seen := s.LinkBaselines[path]
	if seen && currentCount > previous {
		for i := previous + 1; i <= currentCount; i++ {
			s.CreatedLinks = insertUnique(s.CreatedLinks, fmt.Sprintf("%s:%d", path, i))
		}
	}
	s.LinkBaselines[path] = currentCount
}

// End finalizes the session at now and returns its immutable record. A second
// call is a programmer error and is rejected with ErrSessionFinalized.
func (s *Session) End(now time.Time) (Record, error) {
	if s.Finalized() {
		return Record{}, apperrors.ErrSessionFinalized
	}
	s.Resume(now)
	s.EndedAt = now
	return s.record(), nil
}

func (s *Session) record() Record {
	return Record{
		SchemaVersion:      SchemaVersion,
		ID:                 s.ID,
		Category:           s.Category,
		IsBreak:            s.IsBreak,
		Date:               s.StartedAt.Format("2006-01-02"),
		StartedAt:          s.StartedAt,
		EndedAt:            s.EndedAt,
		DurationMin:        ElapsedMinutes(s.StartedAt, s.EndedAt, time.Time{}, s.TotalPause),
		PauseMin:           int(s.TotalPause.Round(time.Minute) / time.Minute),
		PomodorosCompleted: s.PomodorosCompleted,
		Difficulty:         s.Difficulty,
		Notes:              s.Notes,
		Completed:          s.Completed,
		Distractions:       append([]TimedEntry(nil), s.Distractions...),
		Reflections:        append([]TimedEntry(nil), s.Reflections...),
		CompletedTasks:     append([]TimedEntry(nil), s.CompletedTasks...),
		LineNotes:          append([]LineNote(nil), s.LineNotes...),
		ModifiedFiles:      sortedCopy(s.ModifiedFiles),
		OpenedFiles:        sortedCopy(s.OpenedFiles),
		CreatedFiles:       sortedCopy(s.CreatedFiles),
		CreatedLinks:       sortedCopy(s.CreatedLinks),
		WordCount:          s.WordCount,
	}
}

func insertUnique(items []string, item string) []string {
	if strings.TrimSpace(item) == "" {
		return items
	}
	for _, existing := range items {
		if existing == item {
			return items
		}
	}
	return append(items, item)
}

func sortedCopy(items []string) []string {
	out := append([]string(nil), items...)
	sort.Strings(out)
	return out
}
