package out

import (
	"context"

	"studya/internal/modules/report/domain"
)

// ReportStore renders summaries into vault notes and returns the note path.
type ReportStore interface {
	SaveDaily(ctx context.Context, summary domain.DailySummary) (string, error)
	SaveWeekly(ctx context.Context, summary domain.WeeklySummary) (string, error)
}
