package in

import (
	"context"
	"time"

	"studya/internal/modules/session/dto"
)

type Usecase interface {
	ListRange(ctx context.Context, input dto.RangeInput) ([]dto.RecordOutput, error)
	DayTotals(ctx context.Context, day time.Time) (dto.DayTotalsOutput, error)
}
