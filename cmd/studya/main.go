package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"studya/internal/bootstrap"
	timerdto "studya/internal/modules/timer/dto"
	"studya/internal/platform/config"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var vaultPath string

	root := &cobra.Command{
		Use:           "studya",
		Short:         "Study timer and activity journal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&vaultPath, "vault", ".", "vault path")

	root.AddCommand(newTUICmd(&vaultPath))
	root.AddCommand(newStartCmd(&vaultPath))
	root.AddCommand(newPauseCmd(&vaultPath))
	root.AddCommand(newResumeCmd(&vaultPath))
	root.AddCommand(newEndCmd(&vaultPath))
	root.AddCommand(newStatusCmd(&vaultPath))
	root.AddCommand(newSwitchCmd(&vaultPath))
	root.AddCommand(newModeCmd(&vaultPath))
	root.AddCommand(newAddCmd(&vaultPath))
	root.AddCommand(newNoteCmd(&vaultPath))
	root.AddCommand(newDifficultyCmd(&vaultPath))
	root.AddCommand(newObserveCmd(&vaultPath))
	root.AddCommand(newGoalCmd(&vaultPath))
	root.AddCommand(newReportCmd(&vaultPath))
	root.AddCommand(newLogCmd(&vaultPath))
	return root
}

func loadApp(vaultPath string) (*bootstrap.App, error) {
	cfg, err := config.New(vaultPath)
	if err != nil {
		return nil, err
	}
	return bootstrap.New(cfg)
}

func printStatus(cmd *cobra.Command, status timerdto.StatusOutput) {
	out := cmd.OutOrStdout()
	if !status.Active {
		_, _ = fmt.Fprintf(out, "idle mode=%s\n", status.Mode)
		return
	}
	state := "running"
	if status.Paused {
		state = "paused"
	}
	kind := "work"
	if status.OnBreak {
		kind = "break"
	}
	_, _ = fmt.Fprintf(out, "%s %s [%s] mode=%s elapsed=%s", kind, status.Category, state, status.Mode, formatDuration(status.Elapsed))
	if status.Mode != "stopwatch" {
		_, _ = fmt.Fprintf(out, " remaining=%s", formatDuration(status.Remaining))
	}
	if status.Pomodoros > 0 {
		_, _ = fmt.Fprintf(out, " pomodoros=%d", status.Pomodoros)
	}
	_, _ = fmt.Fprintln(out)
}

func formatDuration(d time.Duration) string {
	d = d.Round(time.Second)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	s := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, s)
	}
	return fmt.Sprintf("%02d:%02d", m, s)
}

func newTUICmd(vaultPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "tui",
		Short: "Run the studya terminal UI",
		RunE: func(_ *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			return bootstrap.RunTUI(app)
		},
	}
}

func newStartCmd(vaultPath *string) *cobra.Command {
	var mode string
	start := &cobra.Command{
		Use:   "start [category]",
		Short: "Start a session (ends and attributes any live one first)",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			category := ""
			if len(args) == 1 {
				category = args[0]
			}
			status, err := app.TimerCLI.Start(context.Background(), category, mode)
			if err != nil {
				return err
			}
			printStatus(cmd, status)
			return nil
		},
	}
	start.Flags().StringVar(&mode, "mode", "", "timer mode: interval|stopwatch|goal")
	return start
}

func newPauseCmd(vaultPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "pause",
		Short: "Pause the live session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			status, err := app.TimerCLI.Pause(context.Background())
			if err != nil {
				return err
			}
			printStatus(cmd, status)
			return nil
		},
	}
}

func newResumeCmd(vaultPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "resume",
		Short: "Resume a paused session",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			status, err := app.TimerCLI.Resume(context.Background())
			if err != nil {
				return err
			}
			printStatus(cmd, status)
			return nil
		},
	}
}

func newEndCmd(vaultPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "end",
		Short: "End the live session and persist its record",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			out, err := app.TimerCLI.End(context.Background())
			if err != nil {
				return err
			}
			if !out.Ended {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no session to end")
				return nil
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "ended %s duration=%dmin note=%s\n", out.Category, out.DurationMin, out.NotePath)
			return nil
		},
	}
}

func newStatusCmd(vaultPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show timer status",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			status, err := app.TimerCLI.Status(context.Background())
			if err != nil {
				return err
			}
			printStatus(cmd, status)
			return nil
		},
	}
}

func newSwitchCmd(vaultPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "switch <category>",
		Short: "Switch category without stopping the clock",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			status, err := app.TimerCLI.SwitchCategory(context.Background(), args[0])
			if err != nil {
				return err
			}
			printStatus(cmd, status)
			return nil
		},
	}
}

func newModeCmd(vaultPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "mode <interval|stopwatch|goal>",
		Short: "Switch timer mode (ends any live session)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			status, err := app.TimerCLI.SwitchMode(context.Background(), args[0])
			if err != nil {
				return err
			}
			printStatus(cmd, status)
			return nil
		},
	}
}

func newAddCmd(vaultPath *string) *cobra.Command {
	add := &cobra.Command{Use: "add", Short: "Append journal entries to the live session"}

	add.AddCommand(&cobra.Command{
		Use:   "distraction <text>",
		Short: "Log a distraction",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			return app.TimerCLI.AddDistraction(context.Background(), strings.Join(args, " "))
		},
	})

	add.AddCommand(&cobra.Command{
		Use:   "reflection <text>",
		Short: "Log a reflection",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			return app.TimerCLI.AddReflection(context.Background(), strings.Join(args, " "))
		},
	})

	add.AddCommand(&cobra.Command{
		Use:   "task <text>",
		Short: "Log a completed task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			return app.TimerCLI.AddCompletedTask(context.Background(), strings.Join(args, " "))
		},
	})

	var file, line, tag string
	var lineNumber int
	linenote := &cobra.Command{
		Use:   "linenote <text>",
		Short: "Attach a note to a file line",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			return app.TimerCLI.AddLineNote(context.Background(), file, line, tag, strings.Join(args, " "), lineNumber)
		},
	}
	linenote.Flags().StringVar(&file, "file", "", "vault-relative file path")
	linenote.Flags().StringVar(&line, "line", "", "the line text the note refers to")
	linenote.Flags().StringVar(&tag, "tag", "", "optional tag")
	linenote.Flags().IntVar(&lineNumber, "line-number", 0, "line number")
	add.AddCommand(linenote)

	return add
}

func newNoteCmd(vaultPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "note <text>",
		Short: "Set the live session's free-form notes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			return app.TimerCLI.SetNotes(context.Background(), strings.Join(args, " "))
		},
	}
}

func newDifficultyCmd(vaultPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "difficulty <1-5>",
		Short: "Rate the live session's difficulty",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			level := 0
			if _, err := fmt.Sscanf(args[0], "%d", &level); err != nil {
				return fmt.Errorf("invalid difficulty %q", args[0])
			}
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			return app.TimerCLI.SetDifficulty(context.Background(), level)
		},
	}
}

func newObserveCmd(vaultPath *string) *cobra.Command {
	var event string
	observe := &cobra.Command{
		Use:   "observe <path>",
		Short: "Report a file event for the live session",
		Long:  "Feeds one activity-observer event (modified, opened, or created) for a vault-relative path into the live session.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			ctx := context.Background()
			switch event {
			case "modified":
				return app.Observer.Modified(ctx, args[0])
			case "opened":
				return app.Observer.Opened(ctx, args[0])
			case "created":
				return app.Observer.Created(ctx, args[0])
			default:
				return fmt.Errorf("unknown event %q (expected modified, opened, or created)", event)
			}
		},
	}
	observe.Flags().StringVar(&event, "event", "modified", "event kind: modified|opened|created")
	return observe
}

func newGoalCmd(vaultPath *string) *cobra.Command {
	goal := &cobra.Command{Use: "goal", Short: "Recurring time goals"}

	var period string
	var hours float64
	set := &cobra.Command{
		Use:   "set <category>",
		Short: "Create or replace a category goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			out, err := app.GoalCLI.Set(context.Background(), args[0], hours, period)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "goal set: %s %.1fh %s\n", out.Category, out.TargetHours, out.Period)
			return nil
		},
	}
	set.Flags().Float64Var(&hours, "hours", 1, "target hours per period")
	set.Flags().StringVar(&period, "period", "daily", "period: daily|weekly")
	goal.AddCommand(set)

	goal.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List configured goals",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			goals, err := app.GoalCLI.List(context.Background())
			if err != nil {
				return err
			}
			if len(goals) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no goals")
				return nil
			}
			for _, g := range goals {
				achieved := ""
				if g.Achieved {
					achieved = " achieved"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%.1fh/%.1fh%s\n", g.Category, g.Period, g.SpentHours, g.TargetHours, achieved)
			}
			return nil
		},
	})

	var category string
	progress := &cobra.Command{
		Use:   "progress",
		Short: "Show goal progress including today's tracked time",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			live, err := app.TimerCLI.Status(context.Background())
			if err != nil {
				return err
			}
			liveCategory := ""
			if live.Active && !live.OnBreak {
				liveCategory = live.Category
			}
			rows, err := app.GoalCLI.Progress(context.Background(), category, liveCategory, live.Elapsed)
			if err != nil {
				return err
			}
			if len(rows) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no goals")
				return nil
			}
			for _, row := range rows {
				status := "in progress"
				if row.Achieved {
					status = "achieved"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s [%s] spent=%s target=%s remaining=%s today=%s %s\n",
					row.Category, row.Period,
					formatDuration(row.Spent), formatDuration(row.Target),
					formatDuration(row.Remaining), formatDuration(row.Today), status)
				if row.Period == "weekly" && row.DailyTarget > 0 {
					_, _ = fmt.Fprintf(cmd.OutOrStdout(), "  daily target: %s\n", formatDuration(row.DailyTarget))
				}
			}
			return nil
		},
	}
	progress.Flags().StringVar(&category, "category", "", "filter to one category")
	goal.AddCommand(progress)

	return goal
}

func newReportCmd(vaultPath *string) *cobra.Command {
	report := &cobra.Command{Use: "report", Short: "Compile vault reports"}

	var day string
	parseDay := func() (time.Time, error) {
		if strings.TrimSpace(day) == "" {
			return time.Time{}, nil
		}
		return time.Parse("2006-01-02", day)
	}

	daily := &cobra.Command{
		Use:   "daily",
		Short: "Write the daily report note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			at, err := parseDay()
			if err != nil {
				return err
			}
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			out, err := app.ReportCLI.Daily(context.Background(), at)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "daily report %s: %dmin tracked, %d sessions -> %s\n", out.Date, out.TotalMinutes, out.Sessions, out.Path)
			return nil
		},
	}
	daily.Flags().StringVar(&day, "date", "", "day to report (YYYY-MM-DD, default today)")

	weekly := &cobra.Command{
		Use:   "weekly",
		Short: "Write the weekly report note",
		RunE: func(cmd *cobra.Command, _ []string) error {
			at, err := parseDay()
			if err != nil {
				return err
			}
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			out, err := app.ReportCLI.Weekly(context.Background(), at)
			if err != nil {
				return err
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "weekly report %d-W%02d (%s..%s): %dmin tracked -> %s\n", out.Year, out.Week, out.From, out.To, out.TotalMinutes, out.Path)
			return nil
		},
	}
	weekly.Flags().StringVar(&day, "date", "", "any day in the week to report (YYYY-MM-DD, default today)")

	report.AddCommand(daily, weekly)
	return report
}

func newLogCmd(vaultPath *string) *cobra.Command {
	var from, to string
	log := &cobra.Command{
		Use:   "log",
		Short: "List finalized sessions in a date range",
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := loadApp(*vaultPath)
			if err != nil {
				return err
			}
			now := time.Now()
			start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
			end := start.AddDate(0, 0, 1)
			if from != "" {
				if start, err = time.Parse("2006-01-02", from); err != nil {
					return err
				}
			}
			if to != "" {
				if end, err = time.Parse("2006-01-02", to); err != nil {
					return err
				}
			}
			records, err := app.SessionCLI.ListRange(context.Background(), start, end)
			if err != nil {
				return err
			}
			if len(records) == 0 {
				_, _ = fmt.Fprintln(cmd.OutOrStdout(), "no sessions")
				return nil
			}
			for _, record := range records {
				label := record.Category
				if record.IsBreak {
					label = "(break)"
				}
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "%s %s\t%s\t%dmin\tpomodoros=%d words=%d\n",
					record.Date, record.StartedAt.Format("15:04"), label, record.DurationMin, record.PomodorosCompleted, record.WordCount)
			}
			return nil
		},
	}
	log.Flags().StringVar(&from, "from", "", "start date inclusive (YYYY-MM-DD)")
	log.Flags().StringVar(&to, "to", "", "end date exclusive (YYYY-MM-DD)")
	return log
}
