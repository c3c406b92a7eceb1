package out

import (
	"context"
	"time"

	"studya/internal/modules/session/domain"
)

// RecordStore persists one finalized session record durably. Implemented by
// the vault note writer.
type RecordStore interface {
	Save(ctx context.Context, record domain.Record) (string, error)
}

// RecordProjector keeps the queryable index of finalized records.
type RecordProjector interface {
	Upsert(ctx context.Context, record domain.Record) error
	ListRange(ctx context.Context, from, to time.Time) ([]domain.Record, error)
}
