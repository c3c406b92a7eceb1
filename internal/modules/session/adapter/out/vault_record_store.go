package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"studya/internal/modules/session/domain"
	sessionout "studya/internal/modules/session/port/out"
	"studya/internal/platform/markdown"
	"studya/internal/platform/slug"
)

type VaultRecordStore struct {
	vaultPath string
}

func NewVaultRecordStore(vaultPath string) sessionout.RecordStore {
	return &VaultRecordStore{vaultPath: vaultPath}
}

func (s *VaultRecordStore) Save(_ context.Context, record domain.Record) (string, error) {
	date := record.StartedAt
	dir := filepath.Join(s.vaultPath, "sessions", date.Format("2006"), date.Format("01"), date.Format("02"))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create session dir: %w", err)
	}
	name := fmt.Sprintf("%s-%s.md", date.Format("150405"), slug.Make(record.Category))
	path := filepath.Join(dir, name)

	meta := map[string]any{
		"schema_version":      record.SchemaVersion,
		"id":                  record.ID,
		"category":            record.Category,
		"is_break":            record.IsBreak,
		"date":                record.Date,
		"started_at":          record.StartedAt.Format("2006-01-02T15:04:05Z07:00"),
		"ended_at":            record.EndedAt.Format("2006-01-02T15:04:05Z07:00"),
		"duration_minutes":    record.DurationMin,
		"pause_minutes":       record.PauseMin,
		"pomodoros_completed": record.PomodorosCompleted,
		"difficulty":          record.Difficulty,
		"completed":           record.Completed,
		"word_count":          record.WordCount,
	}
	rendered, err := markdown.RenderFrontmatter(meta, noteBody(record))
	if err != nil {
		return "", err
	}
	if err := os.WriteFile(path, []byte(rendered), 0o644); err != nil {
		return "", fmt.Errorf("write session note: %w", err)
	}
	return path, nil
}

func noteBody(record domain.Record) string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "# %s session %s\n\n", record.Category, record.ID)
	fmt.Fprintf(&b, "- Duration: %d minutes (%d paused)\n", record.DurationMin, record.PauseMin)
	fmt.Fprintf(&b, "- Pomodoros: %d\n", record.PomodorosCompleted)
	fmt.Fprintf(&b, "- Words written: %d\n", record.WordCount)
	if record.Notes != "" {
		fmt.Fprintf(&b, "\n## Notes\n\n%s\n", record.Notes)
	}
	writeEntrySection(&b, "Completed tasks", record.CompletedTasks)
	writeEntrySection(&b, "Distractions", record.Distractions)
	writeEntrySection(&b, "Reflections", record.Reflections)
	if len(record.LineNotes) > 0 {
		b.WriteString("\n## Line notes\n\n")
		for _, note := range record.LineNotes {
			fmt.Fprintf(&b, "- [[%s]] line %d (%s): %s\n", note.File, note.LineNumber, note.Tag, note.Note)
		}
	}
	writeFileSection(&b, "Modified files", record.ModifiedFiles)
	writeFileSection(&b, "Opened files", record.OpenedFiles)
	writeFileSection(&b, "Created files", record.CreatedFiles)
	if len(record.CreatedLinks) > 0 {
		b.WriteString("\n## Created links\n\n")
		for _, link := range record.CreatedLinks {
			fmt.Fprintf(&b, "- %s\n", link)
		}
	}
	return b.String()
}

func writeEntrySection(b *strings.Builder, title string, entries []domain.TimedEntry) {
	if len(entries) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n", title)
	for _, entry := range entries {
		fmt.Fprintf(b, "- %s %s\n", entry.At.Format("15:04"), entry.Text)
	}
}

func writeFileSection(b *strings.Builder, title string, paths []string) {
	if len(paths) == 0 {
		return
	}
	fmt.Fprintf(b, "\n## %s\n\n", title)
	for _, path := range paths {
		fmt.Fprintf(b, "- [[%s]]\n", path)
	}
}
