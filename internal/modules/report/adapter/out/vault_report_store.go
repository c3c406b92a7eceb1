package out

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"studya/internal/modules/report/domain"
	reportout "studya/internal/modules/report/port/out"
	"studya/internal/platform/markdown"
)

const (
	blockStart = "<!-- studya:report:start -->"
	blockEnd   = "<!-- studya:report:end -->"
)

// VaultReportStore renders summaries into markdown notes under reports/.
// The generated section lives inside a managed block so hand-written notes
// around it survive regeneration.
type VaultReportStore struct {
	vaultPath string
}

func NewVaultReportStore(vaultPath string) reportout.ReportStore {
	return &VaultReportStore{vaultPath: vaultPath}
}

func (s *VaultReportStore) SaveDaily(_ context.Context, summary domain.DailySummary) (string, error) {
	path := filepath.Join(s.vaultPath, "reports", "daily", summary.Date+".md")
	return path, s.write(path, dailyBody(summary))
}

func (s *VaultReportStore) SaveWeekly(_ context.Context, summary domain.WeeklySummary) (string, error) {
	name := fmt.Sprintf("%d-W%02d.md", summary.Year, summary.Week)
	path := filepath.Join(s.vaultPath, "reports", "weekly", name)
	return path, s.write(path, weeklyBody(summary))
}

func (s *VaultReportStore) write(path, generated string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}
	existing := ""
	if raw, err := os.ReadFile(path); err == nil {
		existing = string(raw)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("read report: %w", err)
	}
	updated := markdown.ReplaceManagedBlock(existing, blockStart, blockEnd, generated)
	if err := os.WriteFile(path, []byte(updated), 0o644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

func dailyBody(summary domain.DailySummary) string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "# Daily report %s\n\n", summary.Date)
	fmt.Fprintf(&b, "- Tracked: %s across %d sessions\n", domain.FormatMinutes(summary.TotalMinutes), summary.Sessions)
	fmt.Fprintf(&b, "- Breaks: %s\n", domain.FormatMinutes(summary.BreakMinutes))
	fmt.Fprintf(&b, "- Pomodoros: %d\n", summary.Pomodoros)
	fmt.Fprintf(&b, "- Words written: %d\n", summary.Words)
	fmt.Fprintf(&b, "- Distractions: %d\n", summary.Distractions)

	if len(summary.Categories) > 0 {
		b.WriteString("\n## Categories\n\n")
		b.WriteString("| Category | Time | Sessions | Pomodoros | Words |\n")
		b.WriteString("| --- | --- | --- | --- | --- |\n")
		for _, line := range summary.Categories {
			fmt.Fprintf(&b, "| %s | %s | %d | %d | %d |\n",
				line.Category, domain.FormatMinutes(line.Minutes), line.Sessions, line.Pomodoros, line.Words)
		}
	}
	writeGoals(&b, summary.Goals)
	return strings.TrimRight(b.String(), "\n")
}

func weeklyBody(summary domain.WeeklySummary) string {
	b := strings.Builder{}
	fmt.Fprintf(&b, "# Weekly report %d-W%02d (%s to %s)\n\n", summary.Year, summary.Week, summary.From, summary.To)
	fmt.Fprintf(&b, "- Tracked: %s across %d sessions\n", domain.FormatMinutes(summary.TotalMinutes), summary.Sessions)
	fmt.Fprintf(&b, "- Breaks: %s\n", domain.FormatMinutes(summary.BreakMinutes))
	fmt.Fprintf(&b, "- Pomodoros: %d\n", summary.Pomodoros)
	fmt.Fprintf(&b, "- Words written: %d\n", summary.Words)

	b.WriteString("\n## Days\n\n")
	b.WriteString("| Day | Date | Time |\n")
	b.WriteString("| --- | --- | --- |\n")
	for _, day := range summary.Days {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", day.Weekday, day.Date, domain.FormatMinutes(day.Minutes))
	}

	if len(summary.Categories) > 0 {
		b.WriteString("\n## Categories\n\n")
		b.WriteString("| Category | Time | Sessions | Pomodoros | Words |\n")
		b.WriteString("| --- | --- | --- | --- | --- |\n")
		for _, line := range summary.Categories {
			fmt.Fprintf(&b, "| %s | %s | %d | %d | %d |\n",
				line.Category, domain.FormatMinutes(line.Minutes), line.Sessions, line.Pomodoros, line.Words)
		}
	}
	writeGoals(&b, summary.Goals)
	return strings.TrimRight(b.String(), "\n")
}

func writeGoals(b *strings.Builder, goals []domain.GoalLine) {
	if len(goals) == 0 {
		return
	}
	b.WriteString("\n## Goals\n\n")
	b.WriteString("| Category | Period | Spent | Target | Remaining | Today | Status |\n")
	b.WriteString("| --- | --- | --- | --- | --- | --- | --- |\n")
	for _, goal := range goals {
		status := "in progress"
		if goal.Achieved {
			status = "achieved"
		}
		fmt.Fprintf(b, "| %s | %s | %s | %s | %s | %s | %s |\n",
			goal.Category, goal.Period,
			domain.FormatMinutes(goal.SpentMin), domain.FormatMinutes(goal.TargetMin),
			domain.FormatMinutes(goal.RemainingMin), domain.FormatMinutes(goal.TodayMin), status)
	}
}
