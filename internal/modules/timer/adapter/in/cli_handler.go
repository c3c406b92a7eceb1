package in

import (
	"context"

	"studya/internal/modules/timer/dto"
	timerin "studya/internal/modules/timer/port/in"
)

type CLIHandler struct {
	usecase timerin.Usecase
}

func NewCLIHandler(usecase timerin.Usecase) CLIHandler {
	return CLIHandler{usecase: usecase}
}

func (h CLIHandler) Start(ctx context.Context, category, mode string) (dto.StatusOutput, error) {
	return h.usecase.Start(ctx, dto.StartInput{Category: category, Mode: mode})
}

func (h CLIHandler) Pause(ctx context.Context) (dto.StatusOutput, error) {
	return h.usecase.Pause(ctx)
}

func (h CLIHandler) Resume(ctx context.Context) (dto.StatusOutput, error) {
	return h.usecase.Resume(ctx)
}

func (h CLIHandler) End(ctx context.Context) (dto.EndOutput, error) {
	return h.usecase.End(ctx)
}

func (h CLIHandler) Tick(ctx context.Context) (dto.TickOutput, error) {
	return h.usecase.Tick(ctx)
}

func (h CLIHandler) Status(ctx context.Context) (dto.StatusOutput, error) {
	return h.usecase.Status(ctx)
}

func (h CLIHandler) SwitchCategory(ctx context.Context, category string) (dto.StatusOutput, error) {
	return h.usecase.SwitchCategory(ctx, category)
}

func (h CLIHandler) SwitchMode(ctx context.Context, mode string) (dto.StatusOutput, error) {
	return h.usecase.SwitchMode(ctx, mode)
}

func (h CLIHandler) AddDistraction(ctx context.Context, text string) error {
	return h.usecase.AddDistraction(ctx, text)
}

func (h CLIHandler) AddReflection(ctx context.Context, text string) error {
	return h.usecase.AddReflection(ctx, text)
}

func (h CLIHandler) AddCompletedTask(ctx context.Context, text string) error {
	return h.usecase.AddCompletedTask(ctx, text)
}

func (h CLIHandler) AddLineNote(ctx context.Context, file, line, tag, note string, lineNumber int) error {
	return h.usecase.AddLineNote(ctx, dto.LineNoteInput{File: file, Line: line, Tag: tag, Note: note, LineNumber: lineNumber})
}

func (h CLIHandler) SetNotes(ctx context.Context, text string) error {
	return h.usecase.SetNotes(ctx, text)
}

func (h CLIHandler) SetDifficulty(ctx context.Context, level int) error {
	return h.usecase.SetDifficulty(ctx, level)
}
