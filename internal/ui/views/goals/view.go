package goals

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"

	goaldto "studya/internal/modules/goal/dto"
	"studya/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type GoalPort interface {
	Progress(ctx context.Context, category, liveCategory string, liveElapsed time.Duration) ([]goaldto.ProgressOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type ProgressLoadedMsg struct {
	Rows []goaldto.ProgressOutput
	Err  error
}

// RefreshMsg asks the view to reload, carrying the live session so the today
// column includes it.
type RefreshMsg struct {
	LiveCategory string
	LiveElapsed  time.Duration
}

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   GoalPort
	bar    progress.Model
	rows   []goaldto.ProgressOutput
	errMsg string
	width  int
	height int
}

func New(port GoalPort) Model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.ShowPercentage = false
	bar.Width = 24
	return Model{port: port, bar: bar}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd("", 0)
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height

	case RefreshMsg:
		return m, m.loadCmd(msg.LiveCategory, msg.LiveElapsed)

	case ProgressLoadedMsg:
		if msg.Err != nil {
			m.errMsg = msg.Err.Error()
			return m, nil
		}
		m.errMsg = ""
		m.rows = msg.Rows

	case tea.KeyMsg:
		if msg.String() == "r" {
			return m, m.loadCmd("", 0)
		}
	}
	return m, nil
}

func (m Model) loadCmd(liveCategory string, liveElapsed time.Duration) tea.Cmd {
	return func() tea.Msg {
		rows, err := m.port.Progress(context.Background(), "", liveCategory, liveElapsed)
		return ProgressLoadedMsg{Rows: rows, Err: err}
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	b := strings.Builder{}
	b.WriteString(theme.Title.Render("Goals") + "\n\n")

	if m.errMsg != "" {
		b.WriteString(theme.Paused.Render("error: "+m.errMsg) + "\n")
		return theme.Pane.Width(max(m.width-4, 20)).Render(b.String())
	}
	if len(m.rows) == 0 {
		b.WriteString(theme.Muted.Render("No goals configured.") + "\n\n")
		b.WriteString(theme.Muted.Render("Use goal:set in the palette, e.g. goal:set Study 2 daily") + "\n")
		return theme.Pane.Width(max(m.width-4, 20)).Render(b.String())
	}

	for _, row := range m.rows {
		name := theme.Hot.Render(row.Category)
		if row.Achieved {
			name = theme.Good.Render(row.Category + " ✓")
		}
		fmt.Fprintf(&b, "%s  %s\n", name, theme.Muted.Render(row.Period))

		ratio := 0.0
		if row.Target > 0 {
			ratio = float64(row.Spent) / float64(row.Target)
		}
		if ratio > 1 {
			ratio = 1
		}
		fmt.Fprintf(&b, "%s  %s / %s\n", m.bar.ViewAs(ratio), clock(row.Spent), clock(row.Target))

		detail := fmt.Sprintf("today %s", clock(row.Today))
		if row.Period == "weekly" && row.DailyTarget > 0 {
			detail += fmt.Sprintf("  ·  %s/day to stay on track", clock(row.DailyTarget))
		}
		if !row.Achieved {
			detail += fmt.Sprintf("  ·  %s remaining", clock(row.Remaining))
		}
		b.WriteString(theme.Muted.Render(detail) + "\n\n")
	}
	return theme.Pane.Width(max(m.width-4, 20)).Render(strings.TrimRight(b.String(), "\n") + "\n")
}

func clock(d time.Duration) string {
	d = d.Round(time.Minute)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	if h > 0 {
		return fmt.Sprintf("%dh %02dm", h, m)
	}
	return fmt.Sprintf("%dm", m)
}
