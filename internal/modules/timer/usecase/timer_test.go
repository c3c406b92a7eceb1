package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	goaldto "studya/internal/modules/goal/dto"
	sessiondomain "studya/internal/modules/session/domain"
	"studya/internal/modules/timer/domain"
	timerdto "studya/internal/modules/timer/dto"
	"studya/internal/modules/timer/service"
	"studya/internal/platform/config"
	apperrors "studya/internal/platform/errors"
)

type fakeClock struct {
	now time.Time
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) advance(d time.Duration) { c.now = c.now.Add(d) }

type fakeID struct {
	next int
}

func (g *fakeID) New() string {
	g.next++
	return fmt.Sprintf("session-%d", g.next)
}

type fakeRecordStore struct {
	records []sessiondomain.Record
}

func (s *fakeRecordStore) Save(_ context.Context, record sessiondomain.Record) (string, error) {
	s.records = append(s.records, record)
	return "sessions/" + record.ID + ".md", nil
}

type fakeProjector struct {
	records []sessiondomain.Record
}

func (p *fakeProjector) Upsert(_ context.Context, record sessiondomain.Record) error {
	p.records = append(p.records, record)
	return nil
}

func (p *fakeProjector) ListRange(context.Context, time.Time, time.Time) ([]sessiondomain.Record, error) {
	return p.records, nil
}

type fakeGoals struct {
	goals    map[string]goaldto.GoalOutput
	accruals []goaldto.AccrueInput
	achieved []string
	// justAchieved is reported for the next accrual against a known goal.
	justAchieved bool
}

func (g *fakeGoals) Set(context.Context, goaldto.SetInput) (goaldto.GoalOutput, error) {
	return goaldto.GoalOutput{}, nil
}

func (g *fakeGoals) List(context.Context) ([]goaldto.GoalOutput, error) { return nil, nil }

func (g *fakeGoals) Get(_ context.Context, category string) (goaldto.GoalOutput, error) {
	goal, ok := g.goals[category]
	if !ok {
		return goaldto.GoalOutput{}, fmt.Errorf("goal for %q: %w", category, apperrors.ErrNoGoalConfigured)
	}
	return goal, nil
}

func (g *fakeGoals) Accrue(_ context.Context, input goaldto.AccrueInput) (goaldto.AccrueOutput, error) {
	g.accruals = append(g.accruals, input)
	if _, ok := g.goals[input.Category]; !ok {
		return goaldto.AccrueOutput{}, nil
	}
	return goaldto.AccrueOutput{Accrued: true, JustAchieved: g.justAchieved}, nil
}

func (g *fakeGoals) Achieve(_ context.Context, category string) (bool, error) {
	g.achieved = append(g.achieved, category)
	return true, nil
}

func (g *fakeGoals) Progress(context.Context, goaldto.ProgressInput) ([]goaldto.ProgressOutput, error) {
	return nil, nil
}

type fakeStateStore struct {
	state domain.State
	saved bool
}

func (s *fakeStateStore) Save(_ context.Context, state domain.State) error {
	s.state = state
	s.saved = true
	return nil
}

func (s *fakeStateStore) Load(context.Context) (domain.State, error) { return s.state, nil }

func (s *fakeStateStore) Clear(context.Context) error {
	s.state = domain.State{}
	return nil
}

type fakeNotifier struct {
	events []domain.Event
}

func (n *fakeNotifier) Notify(_ context.Context, event domain.Event) error {
	n.events = append(n.events, event)
	return nil
}

type engineFixture struct {
	engine   *Interactor
	clk      *fakeClock
	records  *fakeRecordStore
	goals    *fakeGoals
	states   *fakeStateStore
	notifier *fakeNotifier
}

func newEngineFixture(settings config.Settings) engineFixture {
	clk := &fakeClock{now: time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)}
	records := &fakeRecordStore{}
	goals := &fakeGoals{goals: map[string]goaldto.GoalOutput{}}
	states := &fakeStateStore{}
	notifier := &fakeNotifier{}
	svc := service.NewTimerService(clk, &fakeID{}, records, &fakeProjector{})
	engine := NewInteractor(settings, svc, states, goals, notifier).(*Interactor)
	return engineFixture{engine: engine, clk: clk, records: records, goals: goals, states: states, notifier: notifier}
}

func TestStartUsesDefaultCategoryAndWorkCountdown(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(config.DefaultSettings())
	status, err := f.engine.Start(context.Background(), timerdto.StartInput{})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !status.Active || status.Category != "Study" {
		t.Fatalf("expected active Study session, got %+v", status)
	}
	if status.Remaining != 25*time.Minute {
		t.Fatalf("expected 25m countdown, got %s", status.Remaining)
	}
	if status.OnBreak {
		t.Fatal("work session must not be a break")
	}
}

func TestStartWhileActiveFinalizesPreviousSession(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(config.DefaultSettings())
	ctx := context.Background()
	if _, err := f.engine.Start(ctx, timerdto.StartInput{Category: "Study"}); err != nil {
		t.Fatalf("first Start: %v", err)
	}
	f.clk.advance(10 * time.Minute)
	status, err := f.engine.Start(ctx, timerdto.StartInput{Category: "Work"})
	if err != nil {
		t.Fatalf("second Start: %v", err)
	}

	if len(f.records.records) != 1 {
		t.Fatalf("expected one finalized record, got %d", len(f.records.records))
	}
	record := f.records.records[0]
	if record.Category != "Study" || record.DurationMin != 10 {
		t.Fatalf("unexpected record %q %dmin", record.Category, record.DurationMin)
	}
	if status.Category != "Work" || !status.Active {
		t.Fatalf("expected active Work session, got %+v", status)
	}
	// carry_timer_on_new_session keeps the running countdown.
	if status.Remaining != 15*time.Minute {
		t.Fatalf("expected carried 15m countdown, got %s", status.Remaining)
	}
}

func TestStartWithoutCarryResetsCountdown(t *testing.T) {
	t.Parallel()

	settings := config.DefaultSettings()
	settings.CarryTimerOnNewSession = false
	f := newEngineFixture(settings)
	ctx := context.Background()
	if _, err := f.engine.Start(ctx, timerdto.StartInput{Category: "Study"}); err != nil {
		t.Fatalf("first Start: %v", err)
	}
	f.clk.advance(10 * time.Minute)
	status, err := f.engine.Start(ctx, timerdto.StartInput{Category: "Work"})
	if err != nil {
		t.Fatalf("second Start: %v", err)
	}
	if status.Remaining != 25*time.Minute {
		t.Fatalf("expected fresh 25m countdown, got %s", status.Remaining)
	}
}

func TestSwitchCategoryPreservesCountdownAndRunState(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(config.DefaultSettings())
	ctx := context.Background()
	if _, err := f.engine.Start(ctx, timerdto.StartInput{Category: "Study"}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	f.clk.advance(10 * time.Minute)

	status, err := f.engine.SwitchCategory(ctx, "Work")
	if err != nil {
		t.Fatalf("SwitchCategory: %v", err)
	}
	if status.Category != "Work" || status.Paused {
		t.Fatalf("expected running Work session, got %+v", status)
	}
	if status.Remaining != 15*time.Minute {
		t.Fatalf("expected countdown still at 15m, got %s", status.Remaining)
	}
	if len(f.records.records) != 1 || f.records.records[0].DurationMin != 10 {
		t.Fatalf("expected 10-minute Study record, got %+v", f.records.records)
	}
	if len(f.goals.accruals) != 1 || f.goals.accruals[0].Category != "Study" || f.goals.accruals[0].Duration != 10*time.Minute {
		t.Fatalf("expected 10m accrued to Study, got %+v", f.goals.accruals)
	}
}

func TestSwitchCategoryWhilePausedKeepsPause(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(config.DefaultSettings())
	ctx := context.Background()
	if _, err := f.engine.Start(ctx, timerdto.StartInput{Category: "Study"}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	f.clk.advance(5 * time.Minute)
	if _, err := f.engine.Pause(ctx); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	status, err := f.engine.SwitchCategory(ctx, "Work")
	if err != nil {
		t.Fatalf("SwitchCategory: %v", err)
	}
	if !status.Paused {
		t.Fatal("new session must inherit the paused state")
	}
	if status.Remaining != 20*time.Minute {
		t.Fatalf("expected frozen 20m countdown, got %s", status.Remaining)
	}
}

func TestPauseExcludesTimeFromElapsedAndCountdown(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(config.DefaultSettings())
	ctx := context.Background()
	if _, err := f.engine.Start(ctx, timerdto.StartInput{Category: "Study"}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	f.clk.advance(10 * time.Minute)
	if _, err := f.engine.Pause(ctx); err != nil {
		t.Fatalf("Pause: %v", err)
	}
	f.clk.advance(30 * time.Minute)
	if _, err := f.engine.Resume(ctx); err != nil {
		t.Fatalf("Resume: %v", err)
	}
	f.clk.advance(2 * time.Minute)

	status, err := f.engine.Status(ctx)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.Elapsed != 12*time.Minute {
		t.Fatalf("expected 12m elapsed, got %s", status.Elapsed)
	}
	if status.Remaining != 13*time.Minute {
		t.Fatalf("expected 13m remaining, got %s", status.Remaining)
	}
}

func TestEndWithoutSessionIsNoOp(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(config.DefaultSettings())
	out, err := f.engine.End(context.Background())
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	if out.Ended {
		t.Fatal("ending with no session must report Ended=false")
	}
	if len(f.records.records) != 0 {
		t.Fatal("no record must be written")
	}
}

func TestEndFinalizesAndAttributes(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(config.DefaultSettings())
	ctx := context.Background()
	if _, err := f.engine.Start(ctx, timerdto.StartInput{Category: "Study"}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	f.clk.advance(40 * time.Minute)

	out, err := f.engine.End(ctx)
	if err != nil {
		t.Fatalf("End: %v", err)
	}
	if !out.Ended || out.DurationMin != 40 || out.Category != "Study" {
		t.Fatalf("unexpected end output %+v", out)
	}
	if len(f.goals.accruals) != 1 || f.goals.accruals[0].Duration != 40*time.Minute {
		t.Fatalf("expected a single 40m accrual, got %+v", f.goals.accruals)
	}
	status, err := f.engine.Status(ctx)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.Active {
		t.Fatal("engine must be idle after End")
	}
}

func TestTickWithoutSessionReturnsNoActiveSession(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(config.DefaultSettings())
	if _, err := f.engine.Tick(context.Background()); !errors.Is(err, apperrors.ErrNoActiveSession) {
		t.Fatalf("expected ErrNoActiveSession, got %v", err)
	}
}

func TestIntervalCompletionRollsIntoBreak(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(config.DefaultSettings())
	ctx := context.Background()
	if _, err := f.engine.Start(ctx, timerdto.StartInput{Category: "Study"}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	f.clk.advance(25 * time.Minute)

	out, err := f.engine.Tick(ctx)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if len(out.Events) != 1 || out.Events[0].Kind != string(domain.EventIntervalComplete) {
		t.Fatalf("expected one interval-complete event, got %+v", out.Events)
	}
	if !out.Status.OnBreak || out.Status.Category != "Break" {
		t.Fatalf("expected break session, got %+v", out.Status)
	}
	if out.Status.Remaining != 5*time.Minute {
		t.Fatalf("expected 5m short break, got %s", out.Status.Remaining)
	}
	record := f.records.records[0]
	if !record.Completed || record.PomodorosCompleted != 1 {
		t.Fatalf("work record must be completed with one pomodoro, got %+v", record)
	}
	// Break time is never attributed to goals.
	if len(f.goals.accruals) != 1 || f.goals.accruals[0].Category != "Study" {
		t.Fatalf("only the work session accrues, got %+v", f.goals.accruals)
	}
}

func TestFourthWorkIntervalEarnsLongBreak(t *testing.T) {
	t.Parallel()

	settings := config.DefaultSettings()
	settings.AutoStartWork = true
	f := newEngineFixture(settings)
	ctx := context.Background()
	if _, err := f.engine.Start(ctx, timerdto.StartInput{Category: "Study"}); err != nil {
		t.Fatalf("Start: %v", err)
	}

	var last timerdto.TickOutput
	for cycle := 1; cycle <= 4; cycle++ {
		f.clk.advance(25 * time.Minute)
		out, err := f.engine.Tick(ctx)
		if err != nil {
			t.Fatalf("work tick %d: %v", cycle, err)
		}
		last = out
		if cycle == 4 {
			break
		}
		f.clk.advance(5 * time.Minute)
		if _, err := f.engine.Tick(ctx); err != nil {
			t.Fatalf("break tick %d: %v", cycle, err)
		}
	}

	if last.Status.Remaining != 15*time.Minute {
		t.Fatalf("fourth cycle must earn the 15m long break, got %s", last.Status.Remaining)
	}
	if last.Status.WorkCycles != 4 {
		t.Fatalf("expected 4 work cycles, got %d", last.Status.WorkCycles)
	}
}

func TestBreakCompletionResumesLastWorkCategory(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(config.DefaultSettings())
	ctx := context.Background()
	if _, err := f.engine.Start(ctx, timerdto.StartInput{Category: "Deep Work"}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	f.clk.advance(25 * time.Minute)
	if _, err := f.engine.Tick(ctx); err != nil {
		t.Fatalf("work tick: %v", err)
	}
	f.clk.advance(5 * time.Minute)
	out, err := f.engine.Tick(ctx)
	if err != nil {
		t.Fatalf("break tick: %v", err)
	}

	if len(out.Events) != 1 || out.Events[0].Kind != string(domain.EventBreakComplete) {
		t.Fatalf("expected break-complete, got %+v", out.Events)
	}
	if out.Status.Category != "Deep Work" || out.Status.OnBreak {
		t.Fatalf("expected return to Deep Work, got %+v", out.Status)
	}
	// auto_start_work defaults to false, so the next interval waits.
	if !out.Status.Paused {
		t.Fatal("next work interval must start paused")
	}
	if out.Status.Remaining != 25*time.Minute {
		t.Fatalf("expected fresh 25m work countdown, got %s", out.Status.Remaining)
	}
}

func TestLateTickStillCompletesInterval(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(config.DefaultSettings())
	ctx := context.Background()
	if _, err := f.engine.Start(ctx, timerdto.StartInput{Category: "Study"}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	// Host suspends for three hours; the next tick is far past the target.
	f.clk.advance(3 * time.Hour)
	out, err := f.engine.Tick(ctx)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if len(out.Events) != 1 || out.Events[0].Kind != string(domain.EventIntervalComplete) {
		t.Fatalf("expected interval completion, got %+v", out.Events)
	}
}

func TestGoalModeStartRequiresConfiguredGoal(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(config.DefaultSettings())
	_, err := f.engine.Start(context.Background(), timerdto.StartInput{Category: "Study", Mode: "goal"})
	if !errors.Is(err, apperrors.ErrNoGoalConfigured) {
		t.Fatalf("expected ErrNoGoalConfigured, got %v", err)
	}
}

func TestRejectedGoalModeStartLeavesLiveSessionUntouched(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(config.DefaultSettings())
	f.goals.goals["Study"] = goaldto.GoalOutput{Category: "Study", TargetHours: 2, Period: "daily"}
	ctx := context.Background()
	if _, err := f.engine.Start(ctx, timerdto.StartInput{Category: "Study", Mode: "goal"}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	f.clk.advance(10 * time.Minute)

	_, err := f.engine.Start(ctx, timerdto.StartInput{Category: "Nope"})
	if !errors.Is(err, apperrors.ErrNoGoalConfigured) {
		t.Fatalf("expected ErrNoGoalConfigured, got %v", err)
	}
	if len(f.records.records) != 0 || len(f.goals.accruals) != 0 {
		t.Fatalf("rejected start must not finalize anything, got %d records %d accruals",
			len(f.records.records), len(f.goals.accruals))
	}
	status, err := f.engine.Status(ctx)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if !status.Active || status.Category != "Study" {
		t.Fatalf("expected Study session still live, got %+v", status)
	}

	// The session finalizes exactly once, so its time accrues exactly once.
	if _, err := f.engine.End(ctx); err != nil {
		t.Fatalf("End: %v", err)
	}
	if len(f.records.records) != 1 || f.records.records[0].DurationMin != 10 {
		t.Fatalf("expected one 10min record, got %+v", f.records.records)
	}
	if len(f.goals.accruals) != 1 || f.goals.accruals[0].Duration != 10*time.Minute {
		t.Fatalf("expected one 10m accrual, got %+v", f.goals.accruals)
	}
}

func TestRejectedModeSwitchStartKeepsCurrentMode(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(config.DefaultSettings())
	ctx := context.Background()
	if _, err := f.engine.Start(ctx, timerdto.StartInput{Category: "Study"}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	f.clk.advance(5 * time.Minute)

	_, err := f.engine.Start(ctx, timerdto.StartInput{Category: "Study", Mode: "goal"})
	if !errors.Is(err, apperrors.ErrNoGoalConfigured) {
		t.Fatalf("expected ErrNoGoalConfigured, got %v", err)
	}
	if len(f.records.records) != 0 {
		t.Fatalf("rejected mode switch must not finalize, got %+v", f.records.records)
	}
	status, err := f.engine.Status(ctx)
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if status.Mode != string(domain.ModeInterval) || !status.Active {
		t.Fatalf("expected live interval session, got %+v", status)
	}
}

func TestGoalModeCountsDownFullBudgetAndMarksAchieved(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(config.DefaultSettings())
	f.goals.goals["Study"] = goaldto.GoalOutput{Category: "Study", TargetHours: 1, Period: "daily"}
	ctx := context.Background()

	status, err := f.engine.Start(ctx, timerdto.StartInput{Category: "Study", Mode: "goal"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if status.Remaining != time.Hour {
		t.Fatalf("expected the full 1h budget, got %s", status.Remaining)
	}

	f.clk.advance(time.Hour)
	out, err := f.engine.Tick(ctx)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if out.Status.Active {
		t.Fatal("goal completion must leave the engine idle")
	}
	if len(f.goals.achieved) != 1 || f.goals.achieved[0] != "Study" {
		t.Fatalf("expected Study marked achieved, got %+v", f.goals.achieved)
	}
	if len(out.Events) != 1 || out.Events[0].Kind != string(domain.EventGoalAchieved) {
		t.Fatalf("expected goal-achieved event, got %+v", out.Events)
	}
	if len(f.records.records) != 1 || !f.records.records[0].Completed {
		t.Fatalf("expected one completed record, got %+v", f.records.records)
	}
}

func TestStopwatchModeHasNoCountdownOrCompletion(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(config.DefaultSettings())
	ctx := context.Background()
	if _, err := f.engine.Start(ctx, timerdto.StartInput{Category: "Study", Mode: "stopwatch"}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	f.clk.advance(2 * time.Hour)
	out, err := f.engine.Tick(ctx)
	if err != nil {
		t.Fatalf("Tick: %v", err)
	}
	if len(out.Events) != 0 {
		t.Fatalf("stopwatch must never complete, got %+v", out.Events)
	}
	if out.Status.Elapsed != 2*time.Hour || out.Status.Remaining != 0 {
		t.Fatalf("unexpected stopwatch status %+v", out.Status)
	}
}

func TestStopwatchElapsedSurvivesCategorySwitches(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(config.DefaultSettings())
	ctx := context.Background()
	if _, err := f.engine.Start(ctx, timerdto.StartInput{Category: "Study", Mode: "stopwatch"}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	f.clk.advance(10 * time.Minute)

	status, err := f.engine.SwitchCategory(ctx, "Work")
	if err != nil {
		t.Fatalf("SwitchCategory: %v", err)
	}
	if status.Elapsed != 10*time.Minute {
		t.Fatalf("switch must not reset the clock, got elapsed %s", status.Elapsed)
	}

	f.clk.advance(5 * time.Minute)
	// carry_timer_on_new_session applies to the stopwatch clock too.
	status, err = f.engine.Start(ctx, timerdto.StartInput{Category: "Read"})
	if err != nil {
		t.Fatalf("Start: %v", err)
	}
	if status.Elapsed != 15*time.Minute {
		t.Fatalf("expected 15m carried across restart, got %s", status.Elapsed)
	}
	if len(f.records.records) != 2 || f.records.records[0].DurationMin != 10 || f.records.records[1].DurationMin != 5 {
		t.Fatalf("attribution must still split per session, got %+v", f.records.records)
	}

	if _, err := f.engine.End(ctx); err != nil {
		t.Fatalf("End: %v", err)
	}
	status, err = f.engine.Start(ctx, timerdto.StartInput{Category: "Study"})
	if err != nil {
		t.Fatalf("Start after End: %v", err)
	}
	if status.Elapsed != 0 {
		t.Fatalf("a fresh session starts at zero, got %s", status.Elapsed)
	}
}

func TestSwitchModeFinalizesLiveSession(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(config.DefaultSettings())
	ctx := context.Background()
	if _, err := f.engine.Start(ctx, timerdto.StartInput{Category: "Study"}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	f.clk.advance(12 * time.Minute)
	status, err := f.engine.SwitchMode(ctx, "stopwatch")
	if err != nil {
		t.Fatalf("SwitchMode: %v", err)
	}
	if status.Active {
		t.Fatal("mode switch must leave the engine idle")
	}
	if len(f.records.records) != 1 || f.records.records[0].DurationMin != 12 {
		t.Fatalf("expected a 12-minute record, got %+v", f.records.records)
	}
}

func TestJournalingWithoutSessionIsSilentlyDropped(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(config.DefaultSettings())
	ctx := context.Background()
	if err := f.engine.AddDistraction(ctx, "phone"); err != nil {
		t.Fatalf("AddDistraction: %v", err)
	}
	if err := f.engine.FileModified(ctx, timerdto.FileEventInput{Path: "notes/a.md", WordCount: 10}); err != nil {
		t.Fatalf("FileModified: %v", err)
	}
}

func TestFileEventsIgnoredDuringBreak(t *testing.T) {
	t.Parallel()

	settings := config.DefaultSettings()
	f := newEngineFixture(settings)
	ctx := context.Background()
	if _, err := f.engine.Start(ctx, timerdto.StartInput{Category: "Study"}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	f.clk.advance(25 * time.Minute)
	if _, err := f.engine.Tick(ctx); err != nil {
		t.Fatalf("Tick: %v", err)
	}

	if err := f.engine.FileModified(ctx, timerdto.FileEventInput{Path: "notes/a.md", WordCount: 120}); err != nil {
		t.Fatalf("FileModified: %v", err)
	}
	if words := f.states.state.Session.WordCount; words != 0 {
		t.Fatalf("break session must not accumulate word count, got %d", words)
	}
}

func TestFileEventsRespectTrackedPrefixes(t *testing.T) {
	t.Parallel()

	settings := config.DefaultSettings()
	settings.TrackedPrefixes = []string{"notes/"}
	f := newEngineFixture(settings)
	ctx := context.Background()
	if _, err := f.engine.Start(ctx, timerdto.StartInput{Category: "Study"}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := f.engine.FileModified(ctx, timerdto.FileEventInput{Path: "scratch/tmp.md", WordCount: 50}); err != nil {
		t.Fatalf("FileModified: %v", err)
	}
	if err := f.engine.FileModified(ctx, timerdto.FileEventInput{Path: "notes/a.md", WordCount: 50}); err != nil {
		t.Fatalf("FileModified: %v", err)
	}
	session := f.states.state.Session
	if len(session.ModifiedFiles) != 1 || session.ModifiedFiles[0] != "notes/a.md" {
		t.Fatalf("expected only the tracked path recorded, got %+v", session.ModifiedFiles)
	}
}

func TestSetDifficultyValidatesRange(t *testing.T) {
	t.Parallel()

	f := newEngineFixture(config.DefaultSettings())
	ctx := context.Background()
	if _, err := f.engine.Start(ctx, timerdto.StartInput{}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if err := f.engine.SetDifficulty(ctx, 0); !errors.Is(err, apperrors.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for 0, got %v", err)
	}
	if err := f.engine.SetDifficulty(ctx, 3); err != nil {
		t.Fatalf("SetDifficulty: %v", err)
	}
	if f.states.state.Session.Difficulty != 3 {
		t.Fatalf("expected difficulty 3, got %d", f.states.state.Session.Difficulty)
	}
}
