package timer

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	timerdto "studya/internal/modules/timer/dto"
	"studya/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type TimerPort interface {
	Tick(ctx context.Context) (timerdto.TickOutput, error)
	Status(ctx context.Context) (timerdto.StatusOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

// TickedMsg carries one engine advance; the app level also watches it for
// completion events to surface in the status bar.
type TickedMsg struct {
	Out timerdto.TickOutput
	Err error
}

type StatusLoadedMsg struct {
	Status timerdto.StatusOutput
	Err    error
}

type tickIntervalMsg time.Time

const tickEvery = time.Second

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port     TimerPort
	bar      progress.Model
	status   timerdto.StatusOutput
	interval time.Duration
	width    int
	height   int
}

func New(port TimerPort, workInterval time.Duration) Model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.ShowPercentage = false
	return Model{port: port, bar: bar, interval: workInterval}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.loadStatusCmd(), m.scheduleTick())
}

// Status exposes the last observed engine status to the app level.
func (m Model) Status() timerdto.StatusOutput {
	return m.status
}

func (m *Model) SetStatus(status timerdto.StatusOutput) {
	m.status = status
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.bar.Width = min(m.width-12, 60)

	case tickIntervalMsg:
		if m.status.Active {
			return m, tea.Batch(m.tickCmd(), m.scheduleTick())
		}
		return m, tea.Batch(m.loadStatusCmd(), m.scheduleTick())

	case TickedMsg:
		if msg.Err == nil {
			m.status = msg.Out.Status
		}

	case StatusLoadedMsg:
		if msg.Err == nil {
			m.status = msg.Status
		}
	}
	return m, nil
}

func (m Model) tickCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.port.Tick(context.Background())
		return TickedMsg{Out: out, Err: err}
	}
}

func (m Model) loadStatusCmd() tea.Cmd {
	return func() tea.Msg {
		status, err := m.port.Status(context.Background())
		return StatusLoadedMsg{Status: status, Err: err}
	}
}

func (m Model) scheduleTick() tea.Cmd {
	return tea.Tick(tickEvery, func(t time.Time) tea.Msg {
		return tickIntervalMsg(t)
	})
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	b := strings.Builder{}
	b.WriteString(theme.Title.Render("Timer") + "\n\n")

	if !m.status.Active {
		b.WriteString(theme.Muted.Render("No session running.") + "\n\n")
		b.WriteString(theme.Muted.Render("s to start  ·  : for commands") + "\n")
		return theme.Pane.Width(max(m.width-4, 20)).Render(b.String())
	}

	header := m.status.Category
	if m.status.OnBreak {
		header = theme.Good.Render("Break")
	} else {
		header = theme.Hot.Render(header)
	}
	state := theme.Good.Render("running")
	if m.status.Paused {
		state = theme.Paused.Render("paused")
	}
	fmt.Fprintf(&b, "%s  %s  %s\n\n", header, theme.Muted.Render("["+m.status.Mode+"]"), state)

	b.WriteString(bigClock(m.displayClock()) + "\n\n")

	if m.status.Mode != "stopwatch" {
		b.WriteString(m.bar.ViewAs(m.completion()) + "\n\n")
	}

	fmt.Fprintf(&b, "%s  elapsed %s", theme.Muted.Render("started "+m.status.StartedAt.Format("15:04")), formatClock(m.status.Elapsed))
	if m.status.Pomodoros > 0 || m.status.WorkCycles > 0 {
		fmt.Fprintf(&b, "  ·  cycle %d", m.status.WorkCycles)
	}
	if m.status.Distractions > 0 {
		fmt.Fprintf(&b, "  ·  %d distractions", m.status.Distractions)
	}
	if m.status.WordCount > 0 {
		fmt.Fprintf(&b, "  ·  %d words", m.status.WordCount)
	}
	b.WriteString("\n")
	return theme.Pane.Width(max(m.width-4, 20)).Render(b.String())
}

// displayClock shows what counts: the countdown in interval and goal modes,
// the count-up in stopwatch mode.
func (m Model) displayClock() time.Duration {
	if m.status.Mode == "stopwatch" {
		return m.status.Elapsed
	}
	return m.status.Remaining
}

func (m Model) completion() float64 {
	total := m.interval
	if m.status.Remaining > total {
		total = m.status.Remaining
	}
	if total <= 0 {
		return 0
	}
	done := float64(total-m.status.Remaining) / float64(total)
	if done < 0 {
		return 0
	}
	if done > 1 {
		return 1
	}
	return done
}

func formatClock(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

func bigClock(d time.Duration) string {
	return lipgloss.NewStyle().
		Foreground(theme.Lavender).
		Bold(true).
		Render("  " + formatClock(d))
}
