package out

import (
	"context"

	"studya/internal/modules/goal/domain"
)

// GoalStore persists the full goal list, period state included.
type GoalStore interface {
	Load(ctx context.Context) ([]domain.Goal, error)
	Save(ctx context.Context, goals []domain.Goal) error
}
