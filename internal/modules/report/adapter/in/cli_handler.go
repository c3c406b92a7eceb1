package in

import (
	"context"
	"time"

	"studya/internal/modules/report/dto"
	reportin "studya/internal/modules/report/port/in"
)

type CLIHandler struct {
	usecase reportin.Usecase
}

func NewCLIHandler(usecase reportin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Daily(ctx context.Context, day time.Time) (dto.DailyReportOutput, error) {
	return h.usecase.Daily(ctx, day)
}

func (h CLIHandler) Weekly(ctx context.Context, day time.Time) (dto.WeeklyReportOutput, error) {
	return h.usecase.Weekly(ctx, day)
}
