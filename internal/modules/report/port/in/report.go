package in

import (
	"context"
	"time"

	"studya/internal/modules/report/dto"
)

// Usecase compiles finalized sessions and goal standings into vault reports.
type Usecase interface {
	// Daily writes (or refreshes) the report note for the day containing day.
	Daily(ctx context.Context, day time.Time) (dto.DailyReportOutput, error)
	// Weekly writes the report note for the week containing day.
	Weekly(ctx context.Context, day time.Time) (dto.WeeklyReportOutput, error)
}
