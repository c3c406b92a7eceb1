package out

import (
	"context"
	"fmt"
	"io"

	"studya/internal/modules/timer/domain"
	timerout "studya/internal/modules/timer/port/out"
)

// ConsoleNotifier renders engine events as plain lines on the given writer.
type ConsoleNotifier struct {
	w io.Writer
}

func NewConsoleNotifier(w io.Writer) timerout.Notifier {
	return &ConsoleNotifier{w: w}
}

func (n *ConsoleNotifier) Notify(_ context.Context, event domain.Event) error {
	var message string
	switch event.Kind {
	case domain.EventIntervalComplete:
		message = fmt.Sprintf("Work interval complete (%s). Time for a break.", event.Category)
	case domain.EventBreakComplete:
		message = "Break over. Back to work."
	case domain.EventGoalAchieved:
		message = fmt.Sprintf("Goal achieved for %s!", event.Category)
	default:
		message = fmt.Sprintf("%s (%s)", event.Kind, event.Category)
	}
	_, err := fmt.Fprintf(n.w, "[%s] %s\n", event.At.Format("15:04"), message)
	return err
}
