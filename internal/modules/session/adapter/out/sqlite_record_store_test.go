package out

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"studya/internal/modules/session/domain"
)

func newProjector(t *testing.T) *SQLiteRecordProjector {
	t.Helper()
	projector, err := NewSQLiteRecordProjector(filepath.Join(t.TempDir(), "studya.db"))
	if err != nil {
		t.Fatalf("open projector: %v", err)
	}
	return projector
}

func record(id, category, date string, startedAt time.Time, minutes int) domain.Record {
	return domain.Record{
		SchemaVersion: domain.SchemaVersion,
		ID:            id,
		Category:      category,
		Date:          date,
		StartedAt:     startedAt,
		EndedAt:       startedAt.Add(time.Duration(minutes) * time.Minute),
		DurationMin:   minutes,
	}
}

func TestListRangeFiltersByDateAndOrdersByStart(t *testing.T) {
	t.Parallel()

	projector := newProjector(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	records := []domain.Record{
		record("b", "Study", "2026-03-02", day.Add(14*time.Hour), 30),
		record("a", "Study", "2026-03-02", day.Add(9*time.Hour), 25),
		record("c", "Work", "2026-03-03", day.Add(33*time.Hour), 50),
	}
	for _, r := range records {
		if err := projector.Upsert(ctx, r); err != nil {
			t.Fatalf("Upsert %s: %v", r.ID, err)
		}
	}

	got, err := projector.ListRange(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("ListRange: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected two records on 2026-03-02, got %d", len(got))
	}
	if got[0].ID != "a" || got[1].ID != "b" {
		t.Fatalf("expected start-time order a,b; got %s,%s", got[0].ID, got[1].ID)
	}
}

func TestUpsertReplacesExistingRecord(t *testing.T) {
	t.Parallel()

	projector := newProjector(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	first := record("a", "Study", "2026-03-02", day.Add(9*time.Hour), 25)
	if err := projector.Upsert(ctx, first); err != nil {
		t.Fatalf("Upsert: %v", err)
	}
	first.DurationMin = 40
	if err := projector.Upsert(ctx, first); err != nil {
		t.Fatalf("second Upsert: %v", err)
	}

	got, err := projector.ListRange(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("ListRange: %v", err)
	}
	if len(got) != 1 || got[0].DurationMin != 40 {
		t.Fatalf("expected one updated record, got %+v", got)
	}
}

func TestListRangePreservesFullPayload(t *testing.T) {
	t.Parallel()

	projector := newProjector(t)
	ctx := context.Background()
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

	r := record("a", "Study", "2026-03-02", day.Add(9*time.Hour), 25)
	r.Distractions = []domain.TimedEntry{{At: day.Add(9*time.Hour + 5*time.Minute), Text: "phone"}}
	r.ModifiedFiles = []string{"notes/algebra.md"}
	r.CreatedLinks = []string{"notes/algebra.md:1"}
	r.WordCount = 120
	if err := projector.Upsert(ctx, r); err != nil {
		t.Fatalf("Upsert: %v", err)
	}

	got, err := projector.ListRange(ctx, day, day.AddDate(0, 0, 1))
	if err != nil {
		t.Fatalf("ListRange: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected one record, got %d", len(got))
	}
	if got[0].WordCount != 120 || len(got[0].Distractions) != 1 || got[0].CreatedLinks[0] != "notes/algebra.md:1" {
		t.Fatalf("payload not round-tripped: %+v", got[0])
	}
}
