package in

import (
	"context"

	"studya/internal/modules/goal/dto"
)

type Usecase interface {
	Set(ctx context.Context, input dto.SetInput) (dto.GoalOutput, error)
	List(ctx context.Context) ([]dto.GoalOutput, error)
	Get(ctx context.Context, category string) (dto.GoalOutput, error)
	Accrue(ctx context.Context, input dto.AccrueInput) (dto.AccrueOutput, error)
	// Achieve marks the category's goal achieved if it exists and is not
	// already; it reports whether this call flipped it.
	Achieve(ctx context.Context, category string) (bool, error)
	Progress(ctx context.Context, input dto.ProgressInput) ([]dto.ProgressOutput, error)
}
