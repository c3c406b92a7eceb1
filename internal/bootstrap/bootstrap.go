package bootstrap

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	goalinadapter "studya/internal/modules/goal/adapter/in"
	goaloutadapter "studya/internal/modules/goal/adapter/out"
	goalservice "studya/internal/modules/goal/service"
	goalusecase "studya/internal/modules/goal/usecase"
	reportinadapter "studya/internal/modules/report/adapter/in"
	reportoutadapter "studya/internal/modules/report/adapter/out"
	reportservice "studya/internal/modules/report/service"
	reportusecase "studya/internal/modules/report/usecase"
	sessioninadapter "studya/internal/modules/session/adapter/in"
	sessionoutadapter "studya/internal/modules/session/adapter/out"
	sessionservice "studya/internal/modules/session/service"
	sessionusecase "studya/internal/modules/session/usecase"
	timerinadapter "studya/internal/modules/timer/adapter/in"
	timeroutadapter "studya/internal/modules/timer/adapter/out"
	timerservice "studya/internal/modules/timer/service"
	timerusecase "studya/internal/modules/timer/usecase"
	"studya/internal/platform/clock"
	"studya/internal/platform/config"
	"studya/internal/platform/id"
	uiapp "studya/internal/ui/app"
)

type App struct {
	Config config.Config

	TimerCLI   timerinadapter.CLIHandler
	Observer   timerinadapter.VaultObserver
	SessionCLI sessioninadapter.CLIHandler
	GoalCLI    goalinadapter.CLIHandler
	ReportCLI  reportinadapter.CLIHandler
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}

	recordStore := sessionoutadapter.NewVaultRecordStore(cfg.VaultPath)
	projector, err := sessionoutadapter.NewSQLiteRecordProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new record projector: %w", err)
	}
	sessionUC := sessionusecase.NewInteractor(sessionservice.NewHistoryService(projector))

	goalStore := goaloutadapter.NewFileGoalStore(cfg.GoalsPath)
	goalUC := goalusecase.NewInteractor(
		goalservice.NewLedgerService(clk, goalStore, cfg.Settings.WeekStartDay(), cfg.Settings.ProrateWeekly),
		sessionUC,
	)

	timerUC := timerusecase.NewInteractor(
		cfg.Settings,
		timerservice.NewTimerService(clk, ids, recordStore, projector),
		timeroutadapter.NewFileStateStore(cfg.StatePath),
		goalUC,
		timeroutadapter.NewConsoleNotifier(os.Stdout),
	)

	reportUC := reportusecase.NewInteractor(reportservice.NewReportService(
		clk,
		projector,
		goalUC,
		reportoutadapter.NewVaultReportStore(cfg.VaultPath),
		cfg.Settings.WeekStartDay(),
	))

	return &App{
		Config:     cfg,
		TimerCLI:   timerinadapter.NewCLIHandler(timerUC),
		Observer:   timerinadapter.NewVaultObserver(cfg.VaultPath, timerUC),
		SessionCLI: sessioninadapter.NewCLIHandler(sessionUC),
		GoalCLI:    goalinadapter.NewCLIHandler(goalUC),
		ReportCLI:  reportinadapter.NewCLIHandler(reportUC),
	}, nil
}

func RunTUI(app *App) error {
	model := uiapp.NewModel(
		app.Config.VaultPath,
		app.TimerCLI,
		app.GoalCLI,
		app.SessionCLI,
		app.ReportCLI,
		app.Config.Settings.WorkDuration(),
	)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
