package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	goaldto "studya/internal/modules/goal/dto"
	reportdto "studya/internal/modules/report/dto"
	timerdto "studya/internal/modules/timer/dto"
	"studya/internal/ui/components"
	"studya/internal/ui/theme"
	goalsview "studya/internal/ui/views/goals"
	historyview "studya/internal/ui/views/history"
	timerview "studya/internal/ui/views/timer"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface that this orchestration layer requires.
// Sub-view ports are defined in their own packages and narrowed further.

type timerPort interface {
	timerview.TimerPort
	Start(ctx context.Context, category, mode string) (timerdto.StatusOutput, error)
	Pause(ctx context.Context) (timerdto.StatusOutput, error)
	Resume(ctx context.Context) (timerdto.StatusOutput, error)
	End(ctx context.Context) (timerdto.EndOutput, error)
	SwitchCategory(ctx context.Context, category string) (timerdto.StatusOutput, error)
	SwitchMode(ctx context.Context, mode string) (timerdto.StatusOutput, error)
	AddDistraction(ctx context.Context, text string) error
	AddReflection(ctx context.Context, text string) error
	AddCompletedTask(ctx context.Context, text string) error
	SetNotes(ctx context.Context, text string) error
	SetDifficulty(ctx context.Context, level int) error
}

type goalPort interface {
	goalsview.GoalPort
	Set(ctx context.Context, category string, targetHours float64, period string) (goaldto.GoalOutput, error)
}

type reportPort interface {
	Daily(ctx context.Context, day time.Time) (reportdto.DailyReportOutput, error)
	Weekly(ctx context.Context, day time.Time) (reportdto.WeeklyReportOutput, error)
}

// ─── tab index ───────────────────────────────────────────────────────────────

type tabID int

const (
	tabTimer tabID = iota
	tabGoals
	tabHistory
	tabCount
)

var tabLabels = [tabCount]string{"Timer", "Goals", "History"}

// ─── async messages ───────────────────────────────────────────────────────────

type statusChangedMsg struct {
	status timerdto.StatusOutput
	err    error
}

type sessionEndedMsg struct {
	out timerdto.EndOutput
	err error
}

type journalSavedMsg struct {
	label string
	err   error
}

type goalSavedMsg struct {
	goal goaldto.GoalOutput
	err  error
}

type reportWrittenMsg struct {
	path string
	err  error
}

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
	Start   key.Binding
	Toggle  key.Binding
	End     key.Binding
	Switch  key.Binding
	Distr   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next tab")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
		Start:   key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "start session")),
		Toggle:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "pause/resume")),
		End:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "end session")),
		Switch:  key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "switch category")),
		Distr:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "log distraction")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Start, k.Toggle, k.End},
		{k.Switch, k.Distr},
		{k.Tab, k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

// Model is the root Bubble Tea model. It owns tab routing, the help overlay,
// and the command palette. All business logic is delegated to port
// interfaces; all rendering is delegated to sub-views.
type Model struct {
	vaultPath string

	timer  timerPort
	goals  goalPort
	report reportPort

	timerView   timerview.Model
	goalsView   goalsview.Model
	historyView historyview.Model

	activeTab tabID
	keys      keyMap
	help      help.Model
	showHelp  bool
	palette   components.Palette
	status    string
	width     int
	height    int
}

func NewModel(
	vaultPath string,
	timer timerPort,
	goals goalPort,
	history historyview.HistoryPort,
	report reportPort,
	workInterval time.Duration,
) Model {
	return Model{
		vaultPath:   vaultPath,
		timer:       timer,
		goals:       goals,
		report:      report,
		timerView:   timerview.New(timer, workInterval),
		goalsView:   goalsview.New(goals),
		historyView: historyview.New(history),
		activeTab:   tabTimer,
		keys:        defaultKeys(),
		help:        help.New(),
		palette:     components.NewPalette(),
		status:      "ready",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(
		m.timerView.Init(),
		m.goalsView.Init(),
		m.historyView.Init(),
	)
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	// The palette intercepts all input while open.
	if m.palette.Visible() {
		if _, isKey := msg.(tea.KeyMsg); isKey {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.palette.SetWidth(min(m.width-4, 80))
		m.help.Width = m.width
		m.propagateSize(msg)

	case timerview.TickedMsg:
		if msg.Err != nil {
			break
		}
		for _, event := range msg.Out.Events {
			m.status = eventLabel(event)
			// A completion finalized a session, so dependent views refresh.
			cmds = append(cmds,
				refresh(goalsview.RefreshMsg{LiveCategory: msg.Out.Status.Category, LiveElapsed: msg.Out.Status.Elapsed}),
				refresh(historyview.RefreshMsg{}),
			)
		}

	case statusChangedMsg:
		if msg.err != nil {
			m.status = msg.err.Error()
		} else {
			m.timerView.SetStatus(msg.status)
			if msg.status.Active {
				m.status = "tracking " + msg.status.Category
			} else {
				m.status = "idle"
			}
			cmds = append(cmds, refresh(goalsview.RefreshMsg{LiveCategory: msg.status.Category, LiveElapsed: msg.status.Elapsed}))
		}

	case sessionEndedMsg:
		if msg.err != nil {
			m.status = "end failed: " + msg.err.Error()
		} else if !msg.out.Ended {
			m.status = "nothing to end"
		} else {
			m.status = fmt.Sprintf("ended %s (%dm)", msg.out.Category, msg.out.DurationMin)
			m.timerView.SetStatus(timerdto.StatusOutput{})
			cmds = append(cmds, refresh(goalsview.RefreshMsg{}), refresh(historyview.RefreshMsg{}))
		}

	case journalSavedMsg:
		if msg.err != nil {
			m.status = msg.label + " failed: " + msg.err.Error()
		} else {
			m.status = msg.label + " logged"
		}

	case goalSavedMsg:
		if msg.err != nil {
			m.status = "goal save failed: " + msg.err.Error()
		} else {
			m.status = fmt.Sprintf("goal set: %s %.1fh %s", msg.goal.Category, msg.goal.TargetHours, msg.goal.Period)
			cmds = append(cmds, refresh(goalsview.RefreshMsg{}))
		}

	case reportWrittenMsg:
		if msg.err != nil {
			m.status = "report failed: " + msg.err.Error()
		} else {
			m.status = "report written: " + msg.path
		}

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		m.status = "ready"

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}
		if m.activeTab == tabHistory && m.historyView.Filtering() {
			break
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "tab":
			m.activeTab = (m.activeTab + 1) % tabCount
		case "shift+tab":
			m.activeTab = (m.activeTab + tabCount - 1) % tabCount
		case "?":
			m.showHelp = !m.showHelp
		case ":":
			return m, m.palette.Open()
		case "s":
			return m, m.startCmd("", "")
		case " ":
			return m, m.toggleCmd()
		case "e":
			return m, m.endCmd()
		case "c":
			return m, m.palette.OpenWith("switch ")
		case "d":
			return m, m.palette.OpenWith("distraction ")
		}
	}

	// The timer view always receives messages so its tick loop never stalls
	// while another tab is visible.
	var tabCmd tea.Cmd
	m.timerView, tabCmd = m.timerView.Update(msg)
	cmds = append(cmds, tabCmd)

	switch msg.(type) {
	case goalsview.RefreshMsg, goalsview.ProgressLoadedMsg:
		m.goalsView, tabCmd = m.goalsView.Update(msg)
		cmds = append(cmds, tabCmd)
	case historyview.RefreshMsg, historyview.DayLoadedMsg:
		m.historyView, tabCmd = m.historyView.Update(msg)
		cmds = append(cmds, tabCmd)
	default:
		switch m.activeTab {
		case tabGoals:
			m.goalsView, tabCmd = m.goalsView.Update(msg)
			cmds = append(cmds, tabCmd)
		case tabHistory:
			m.historyView, tabCmd = m.historyView.Update(msg)
			cmds = append(cmds, tabCmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m *Model) propagateSize(msg tea.WindowSizeMsg) {
	m.timerView, _ = m.timerView.Update(msg)
	m.goalsView, _ = m.goalsView.Update(msg)
	m.historyView, _ = m.historyView.Update(msg)
}

func refresh(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

func eventLabel(event timerdto.EventOutput) string {
	switch event.Kind {
	case "interval-complete":
		return "work interval complete — break time"
	case "break-complete":
		return "break over — back to " + event.Category
	case "goal-achieved":
		return "goal achieved: " + event.Category
	default:
		return event.Kind
	}
}

// ─── commands ─────────────────────────────────────────────────────────────────

func (m Model) startCmd(category, mode string) tea.Cmd {
	return func() tea.Msg {
		status, err := m.timer.Start(context.Background(), category, mode)
		return statusChangedMsg{status: status, err: err}
	}
}

// toggleCmd pauses a running session and resumes a paused one.
func (m Model) toggleCmd() tea.Cmd {
	paused := m.timerView.Status().Paused
	return func() tea.Msg {
		var (
			status timerdto.StatusOutput
			err    error
		)
		if paused {
			status, err = m.timer.Resume(context.Background())
		} else {
			status, err = m.timer.Pause(context.Background())
		}
		return statusChangedMsg{status: status, err: err}
	}
}

func (m Model) endCmd() tea.Cmd {
	return func() tea.Msg {
		out, err := m.timer.End(context.Background())
		return sessionEndedMsg{out: out, err: err}
	}
}

func (m Model) journalCmd(label string, save func(context.Context) error) tea.Cmd {
	return func() tea.Msg {
		return journalSavedMsg{label: label, err: save(context.Background())}
	}
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	tabBarH := lipgloss.Height(tabBar)
	statusBarH := lipgloss.Height(statusBar)

	contentH := m.height - tabBarH - statusBarH
	if contentH < 1 {
		contentH = 1
	}

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).
			Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH,
			lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.activeView()
	}

	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m Model) activeView() string {
	switch m.activeTab {
	case tabTimer:
		return m.timerView.View()
	case tabGoals:
		return m.goalsView.View()
	case tabHistory:
		return m.historyView.View()
	}
	return ""
}

func (m Model) renderTabBar() string {
	parts := make([]string, tabCount)
	for i := tabID(0); i < tabCount; i++ {
		label := tabLabels[i]
		if i == m.activeTab {
			parts[i] = theme.Hot.Render(" " + label + " ")
		} else {
			parts[i] = theme.Muted.Render(" " + label + " ")
		}
	}
	sep := theme.Muted.Render(" │ ")
	bar := "studya  " + strings.Join(parts, sep)
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	status := m.timerView.Status()
	if status.Active {
		marker := theme.Good.Render("● " + status.Category)
		if status.Paused {
			marker = theme.Paused.Render("❚❚ " + status.Category)
		}
		left = marker + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:switch  :::palette  q:quit")
	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (tea.Model, tea.Cmd) {
	if strings.TrimSpace(input) == "" {
		return m, nil
	}
	parts := strings.Fields(input)
	rest := strings.TrimSpace(strings.TrimPrefix(input, parts[0]))

	switch parts[0] {
	case "start":
		return m, m.startCmd(rest, "")

	case "end":
		return m, m.endCmd()

	case "pause":
		return m, func() tea.Msg {
			status, err := m.timer.Pause(context.Background())
			return statusChangedMsg{status: status, err: err}
		}

	case "resume":
		return m, func() tea.Msg {
			status, err := m.timer.Resume(context.Background())
			return statusChangedMsg{status: status, err: err}
		}

	case "switch":
		if rest == "" {
			m.status = "usage: switch <category>"
			return m, nil
		}
		return m, func() tea.Msg {
			status, err := m.timer.SwitchCategory(context.Background(), rest)
			return statusChangedMsg{status: status, err: err}
		}

	case "mode":
		if rest == "" {
			m.status = "usage: mode <interval|stopwatch|goal>"
			return m, nil
		}
		return m, func() tea.Msg {
			status, err := m.timer.SwitchMode(context.Background(), rest)
			return statusChangedMsg{status: status, err: err}
		}

	case "distraction":
		return m, m.journalCmd("distraction", func(ctx context.Context) error {
			return m.timer.AddDistraction(ctx, rest)
		})

	case "reflection":
		return m, m.journalCmd("reflection", func(ctx context.Context) error {
			return m.timer.AddReflection(ctx, rest)
		})

	case "task":
		return m, m.journalCmd("task", func(ctx context.Context) error {
			return m.timer.AddCompletedTask(ctx, rest)
		})

	case "note":
		return m, m.journalCmd("note", func(ctx context.Context) error {
			return m.timer.SetNotes(ctx, rest)
		})

	case "difficulty":
		level, err := strconv.Atoi(rest)
		if err != nil {
			m.status = "usage: difficulty <1-5>"
			return m, nil
		}
		return m, m.journalCmd("difficulty", func(ctx context.Context) error {
			return m.timer.SetDifficulty(ctx, level)
		})

	case "goal:set":
		if len(parts) < 4 {
			m.status = "usage: goal:set <category> <hours> <daily|weekly>"
			return m, nil
		}
		hours, err := strconv.ParseFloat(parts[len(parts)-2], 64)
		if err != nil {
			m.status = "invalid hours"
			return m, nil
		}
		category := strings.Join(parts[1:len(parts)-2], " ")
		period := parts[len(parts)-1]
		return m, func() tea.Msg {
			goal, err := m.goals.Set(context.Background(), category, hours, period)
			return goalSavedMsg{goal: goal, err: err}
		}

	case "report:daily":
		return m, func() tea.Msg {
			out, err := m.report.Daily(context.Background(), time.Time{})
			return reportWrittenMsg{path: out.Path, err: err}
		}

	case "report:weekly":
		return m, func() tea.Msg {
			out, err := m.report.Weekly(context.Background(), time.Time{})
			return reportWrittenMsg{path: out.Path, err: err}
		}
	}

	m.status = "unknown command: " + parts[0]
	return m, nil
}
