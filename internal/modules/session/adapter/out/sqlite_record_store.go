package out

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"studya/internal/modules/session/domain"

	_ "modernc.org/sqlite"
)

// SQLiteRecordProjector indexes finalized session records for date-range
// queries. The vault note remains the durable source of truth; the scalar
// columns serve filtering and the payload column round-trips the full record.
type SQLiteRecordProjector struct {
	db *sql.DB
}

func NewSQLiteRecordProjector(dbPath string) (*SQLiteRecordProjector, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	p := &SQLiteRecordProjector{db: db}
	if err := p.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return p, nil
}

func (p *SQLiteRecordProjector) ensureSchema(ctx context.Context) error {
	const ddl = `
CREATE TABLE IF NOT EXISTS sessions (
  id TEXT PRIMARY KEY,
  category TEXT NOT NULL,
  is_break INTEGER NOT NULL,
  date TEXT NOT NULL,
  started_at TEXT NOT NULL,
  duration_min INTEGER NOT NULL,
  pomodoros INTEGER NOT NULL,
  completed INTEGER NOT NULL,
  word_count INTEGER NOT NULL,
  payload TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_sessions_date ON sessions(date, category);
`
	if _, err := p.db.ExecContext(ctx, ddl); err != nil {
		return fmt.Errorf("create sessions table: %w", err)
	}
	return nil
}

func (p *SQLiteRecordProjector) Upsert(ctx context.Context, record domain.Record) error {
	payload, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal session record: %w", err)
	}
	const stmt = `
INSERT INTO sessions (id, category, is_break, date, started_at, duration_min, pomodoros, completed, word_count, payload)
VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  category=excluded.category,
  is_break=excluded.is_break,
  date=excluded.date,
  started_at=excluded.started_at,
  duration_min=excluded.duration_min,
  pomodoros=excluded.pomodoros,
  completed=excluded.completed,
  word_count=excluded.word_count,
  payload=excluded.payload;
`
	_, err = p.db.ExecContext(ctx, stmt,
		record.ID,
		record.Category,
		boolInt(record.IsBreak),
		record.Date,
		record.StartedAt.Format("2006-01-02T15:04:05Z07:00"),
		record.DurationMin,
		record.PomodorosCompleted,
		boolInt(record.Completed),
		record.WordCount,
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("upsert session record: %w", err)
	}
	return nil
}

// ListRange returns records whose start date falls within [from, to), ordered
// by start time.
func (p *SQLiteRecordProjector) ListRange(ctx context.Context, from, to time.Time) ([]domain.Record, error) {
	rows, err := p.db.QueryContext(ctx, `
SELECT payload
FROM sessions
WHERE date >= ? AND date < ?
ORDER BY started_at ASC;
`, from.Format("2006-01-02"), to.Format("2006-01-02"))
	if err != nil {
		return nil, fmt.Errorf("list session records: %w", err)
	}
	defer rows.Close()

	out := []domain.Record{}
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan session record: %w", err)
		}
		record := domain.Record{}
		if err := json.Unmarshal([]byte(payload), &record); err != nil {
			return nil, fmt.Errorf("decode session record: %w", err)
		}
		out = append(out, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate session records: %w", err)
	}
	return out, nil
}

func boolInt(v bool) int {
	if v {
		return 1
	}
	return 0
}
