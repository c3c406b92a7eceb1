package in

import (
	"context"
	"time"

	goaldto "studya/internal/modules/goal/dto"
	goalin "studya/internal/modules/goal/port/in"
)

type CLIHandler struct {
	usecase goalin.Usecase
}

func NewCLIHandler(usecase goalin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Set(ctx context.Context, category string, targetHours float64, period string) (goaldto.GoalOutput, error) {
	return h.usecase.Set(ctx, goaldto.SetInput{Category: category, TargetHours: targetHours, Period: period})
}

func (h CLIHandler) List(ctx context.Context) ([]goaldto.GoalOutput, error) {
	return h.usecase.List(ctx)
}

func (h CLIHandler) Progress(ctx context.Context, category, liveCategory string, liveElapsed time.Duration) ([]goaldto.ProgressOutput, error) {
	return h.usecase.Progress(ctx, goaldto.ProgressInput{
		Category:     category,
		LiveCategory: liveCategory,
		LiveElapsed:  liveElapsed,
	})
}
