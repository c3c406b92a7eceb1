package history

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	sessiondto "studya/internal/modules/session/dto"
	"studya/internal/ui/theme"
)

// ─── port ────────────────────────────────────────────────────────────────────

type HistoryPort interface {
	ListRange(ctx context.Context, from, to time.Time) ([]sessiondto.RecordOutput, error)
	DayTotals(ctx context.Context, day time.Time) (sessiondto.DayTotalsOutput, error)
}

// ─── messages ────────────────────────────────────────────────────────────────

type DayLoadedMsg struct {
	Records []sessiondto.RecordOutput
	Totals  sessiondto.DayTotalsOutput
	Err     error
}

// RefreshMsg reloads today's records, sent by the app after a finalize.
type RefreshMsg struct{}

// ─── list item ───────────────────────────────────────────────────────────────

type recordItem struct {
	record sessiondto.RecordOutput
}

func (i recordItem) Title() string {
	label := i.record.Category
	if i.record.IsBreak {
		label = "Break"
	}
	return fmt.Sprintf("%s  %s", i.record.StartedAt.Format("15:04"), label)
}

func (i recordItem) Description() string {
	parts := []string{fmt.Sprintf("%dm", i.record.DurationMin)}
	if i.record.PomodorosCompleted > 0 {
		parts = append(parts, fmt.Sprintf("%d pomodoros", i.record.PomodorosCompleted))
	}
	if i.record.WordCount > 0 {
		parts = append(parts, fmt.Sprintf("%d words", i.record.WordCount))
	}
	if len(i.record.Distractions) > 0 {
		parts = append(parts, fmt.Sprintf("%d distractions", len(i.record.Distractions)))
	}
	return strings.Join(parts, " · ")
}

func (i recordItem) FilterValue() string { return i.record.Category }

// ─── model ───────────────────────────────────────────────────────────────────

type Model struct {
	port   HistoryPort
	list   list.Model
	totals sessiondto.DayTotalsOutput
	width  int
	height int
}

func New(port HistoryPort) Model {
	delegate := list.NewDefaultDelegate()
	delegate.Styles.SelectedTitle = delegate.Styles.SelectedTitle.Foreground(theme.Green).BorderForeground(theme.Green)
	delegate.Styles.SelectedDesc = delegate.Styles.SelectedDesc.Foreground(theme.Sapphire).BorderForeground(theme.Green)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "Today"
	l.Styles.Title = theme.Title
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(true)
	l.SetShowHelp(false)

	return Model{port: port, list: l}
}

func (m Model) Init() tea.Cmd {
	return m.loadCmd()
}

func (m Model) Filtering() bool {
	return m.list.FilterState() == list.Filtering
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.list.SetSize(m.width-4, max(m.height-6, 4))

	case RefreshMsg:
		return m, m.loadCmd()

	case DayLoadedMsg:
		if msg.Err != nil {
			m.list.Title = "Today — " + msg.Err.Error()
			return m, nil
		}
		m.totals = msg.Totals
		m.list.Title = "Today — " + summarize(msg.Totals)
		items := make([]list.Item, len(msg.Records))
		for i, record := range msg.Records {
			items[i] = recordItem{record: record}
		}
		return m, m.list.SetItems(items)
	}

	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) loadCmd() tea.Cmd {
	return func() tea.Msg {
		now := time.Now()
		from := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		records, err := m.port.ListRange(context.Background(), from, from.AddDate(0, 0, 1))
		if err != nil {
			return DayLoadedMsg{Err: err}
		}
		totals, err := m.port.DayTotals(context.Background(), now)
		return DayLoadedMsg{Records: records, Totals: totals, Err: err}
	}
}

func (m Model) View() string {
	return m.list.View()
}

func summarize(totals sessiondto.DayTotalsOutput) string {
	minutes := 0
	for _, c := range totals.Categories {
		minutes += c.Minutes
	}
	if minutes == 0 {
		return "nothing tracked yet"
	}
	return fmt.Sprintf("%dh %02dm tracked", minutes/60, minutes%60)
}
