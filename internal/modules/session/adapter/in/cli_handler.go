package in

import (
	"context"
	"time"

	sessiondto "studya/internal/modules/session/dto"
	sessionin "studya/internal/modules/session/port/in"
)

type CLIHandler struct {
	usecase sessionin.Usecase
}

func NewCLIHandler(usecase sessionin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) ListRange(ctx context.Context, from, to time.Time) ([]sessiondto.RecordOutput, error) {
	return h.usecase.ListRange(ctx, sessiondto.RangeInput{From: from, To: to})
}

func (h CLIHandler) DayTotals(ctx context.Context, day time.Time) (sessiondto.DayTotalsOutput, error) {
	return h.usecase.DayTotals(ctx, day)
}
