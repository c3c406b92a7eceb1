package out

import (
	"context"

	"studya/internal/modules/timer/domain"
)

// StateStore round-trips the whole engine state between invocations. Load
// returns a zero State (no error) when nothing has been saved yet.
type StateStore interface {
	Save(ctx context.Context, state domain.State) error
	Load(ctx context.Context) (domain.State, error)
	Clear(ctx context.Context) error
}

// Notifier receives the engine's discrete events for external presentation.
type Notifier interface {
	Notify(ctx context.Context, event domain.Event) error
}
