package in

import (
	"context"

	"studya/internal/modules/timer/dto"
)

// Usecase is the full driving surface of the timer engine: lifecycle,
// cooperative ticks, journaling, and the activity-observer events the host
// forwards for the live session.
type Usecase interface {
	Start(ctx context.Context, input dto.StartInput) (dto.StatusOutput, error)
	Pause(ctx context.Context) (dto.StatusOutput, error)
	Resume(ctx context.Context) (dto.StatusOutput, error)
	End(ctx context.Context) (dto.EndOutput, error)
	Tick(ctx context.Context) (dto.TickOutput, error)
	Status(ctx context.Context) (dto.StatusOutput, error)
	SwitchCategory(ctx context.Context, category string) (dto.StatusOutput, error)
	SwitchMode(ctx context.Context, mode string) (dto.StatusOutput, error)

	AddDistraction(ctx context.Context, text string) error
	AddReflection(ctx context.Context, text string) error
	AddCompletedTask(ctx context.Context, text string) error
	AddLineNote(ctx context.Context, input dto.LineNoteInput) error
	SetNotes(ctx context.Context, text string) error
	SetDifficulty(ctx context.Context, level int) error

	FileModified(ctx context.Context, input dto.FileEventInput) error
	FileOpened(ctx context.Context, path string) error
	FileCreated(ctx context.Context, path string) error
}
