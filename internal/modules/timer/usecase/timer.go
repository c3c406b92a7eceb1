package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	goaldto "studya/internal/modules/goal/dto"
	goalin "studya/internal/modules/goal/port/in"
	sessiondomain "studya/internal/modules/session/domain"
	"studya/internal/modules/timer/domain"
	timerdto "studya/internal/modules/timer/dto"
	timerin "studya/internal/modules/timer/port/in"
	timerout "studya/internal/modules/timer/port/out"
	"studya/internal/modules/timer/service"
	"studya/internal/platform/config"
	apperrors "studya/internal/platform/errors"
)

// Interactor drives the timer engine. It is the sole owner of the live
// session: every call loads the engine state, applies one synchronous
// mutation, and saves it back before returning, which is the cooperative
// single-threaded model — there is never a tick in flight across a
// finalization boundary.
type Interactor struct {
	settings config.Settings
	svc      *service.TimerService
	states   timerout.StateStore
	goals    goalin.Usecase
	notifier timerout.Notifier
}

func NewInteractor(settings config.Settings, svc *service.TimerService, states timerout.StateStore, goals goalin.Usecase, notifier timerout.Notifier) timerin.Usecase {
	return &Interactor{settings: settings, svc: svc, states: states, goals: goals, notifier: notifier}
}

func (i *Interactor) load(ctx context.Context) (domain.State, error) {
	state, err := i.states.Load(ctx)
	if err != nil {
		return domain.State{}, err
	}
	if state.Mode == "" {
		state.Mode = domain.ModeInterval
	}
	return state, nil
}

// Start begins a session under the given category (or the configured default).
// If a session is already live it is finalized and attributed first; whether
// the visible timer carries over or resets is the carry_timer_on_new_session
// setting.
func (i *Interactor) Start(ctx context.Context, input timerdto.StartInput) (timerdto.StatusOutput, error) {
	state, err := i.load(ctx)
	if err != nil {
		return timerdto.StatusOutput{}, err
	}
	now := i.svc.Now()

	mode := state.Mode
	if input.Mode != "" {
		mode = domain.Mode(strings.ToLower(strings.TrimSpace(input.Mode)))
		if err := mode.Validate(); err != nil {
			return timerdto.StatusOutput{}, err
		}
	}

	category := strings.TrimSpace(input.Category)
	if category == "" {
		category = i.settings.DefaultCategory
	}

	// Goal mode needs a configured target. Resolving it before anything is
	// finalized keeps a rejected Start from ending the live session and then
	// leaving it live in the state store, where the next finalize would
	// attribute its time a second time.
	var goalTarget time.Duration
	if mode == domain.ModeGoal {
		goal, err := i.goals.Get(ctx, category)
		if err != nil {
			return timerdto.StatusOutput{}, fmt.Errorf("goal mode for %q: %w", category, err)
		}
		goalTarget = time.Duration(goal.TargetHours * float64(time.Hour))
	}

	if mode != state.Mode {
		if state.Active() {
			if _, _, err := i.transition(ctx, &state, now, "", true); err != nil {
				return timerdto.StatusOutput{}, err
			}
		}
		state.Mode = mode
		state.Countdown = domain.Countdown{}
		state.CarriedElapsed = 0
	}

	if state.Active() {
		if _, _, err := i.transition(ctx, &state, now, category, true); err != nil {
			return timerdto.StatusOutput{}, err
		}
		if !i.settings.CarryTimerOnNewSession {
			i.armCountdown(&state, now, goalTarget)
		}
	} else {
		session := i.svc.NewSession(category, i.settings.BreakCategory)
		state.Session = session
		if !session.IsBreak {
			state.LastWorkCategory = category
		}
		i.armCountdown(&state, now, goalTarget)
	}

	if err := i.states.Save(ctx, state); err != nil {
		return timerdto.StatusOutput{}, err
	}
	return i.status(state, now), nil
}

// armCountdown resets the clock for the current mode: the configured work
// duration in interval mode, the prefetched goal budget in goal mode, zero
// elapsed in stopwatch mode.
func (i *Interactor) armCountdown(state *domain.State, now time.Time, goalTarget time.Duration) {
	state.CarriedElapsed = 0
	switch state.Mode {
	case domain.ModeInterval:
		state.Countdown.Start(now, i.settings.WorkDuration())
	case domain.ModeGoal:
		state.Countdown.Start(now, goalTarget)
	case domain.ModeStopwatch:
		state.Countdown = domain.Countdown{}
	}
}

func (i *Interactor) Pause(ctx context.Context) (timerdto.StatusOutput, error) {
	state, err := i.load(ctx)
	if err != nil {
		return timerdto.StatusOutput{}, err
	}
	now := i.svc.Now()
	if state.Active() {
		state.Session.Pause(now)
		if state.Mode != domain.ModeStopwatch {
			state.Countdown.Pause(now)
		}
		if err := i.states.Save(ctx, state); err != nil {
			return timerdto.StatusOutput{}, err
		}
	}
	return i.status(state, now), nil
}

func (i *Interactor) Resume(ctx context.Context) (timerdto.StatusOutput, error) {
	state, err := i.load(ctx)
	if err != nil {
		return timerdto.StatusOutput{}, err
	}
	now := i.svc.Now()
	if state.Active() {
		state.Session.Resume(now)
		if state.Mode != domain.ModeStopwatch {
			state.Countdown.Resume(now)
		}
		if err := i.states.Save(ctx, state); err != nil {
			return timerdto.StatusOutput{}, err
		}
	}
	return i.status(state, now), nil
}

// End finalizes the live session. Ending with no live session is a defined
// no-op, never an error.
func (i *Interactor) End(ctx context.Context) (timerdto.EndOutput, error) {
	state, err := i.load(ctx)
	if err != nil {
		return timerdto.EndOutput{}, err
	}
	if !state.Active() {
		return timerdto.EndOutput{}, nil
	}
	now := i.svc.Now()
	record, path, err := i.transition(ctx, &state, now, "", true)
	if err != nil {
		return timerdto.EndOutput{}, err
	}
	state.Countdown = domain.Countdown{}
	state.CarriedElapsed = 0
	if err := i.states.Save(ctx, state); err != nil {
		return timerdto.EndOutput{}, err
	}
	return timerdto.EndOutput{
		Ended:       true,
		SessionID:   record.ID,
		Category:    record.Category,
		DurationMin: record.DurationMin,
		NotePath:    path,
	}, nil
}

// Tick advances the engine from absolute timestamps. Completion is detected
// by comparing now against the countdown target, so a tick arriving hours
// late (host suspend) still resolves correctly.
func (i *Interactor) Tick(ctx context.Context) (timerdto.TickOutput, error) {
	state, err := i.load(ctx)
	if err != nil {
		return timerdto.TickOutput{}, err
	}
	if !state.Active() {
		return timerdto.TickOutput{}, apperrors.ErrNoActiveSession
	}
	now := i.svc.Now()
	events := []domain.Event{}

	switch {
	case state.Mode == domain.ModeInterval && state.Countdown.Done(now):
		events, err = i.completeInterval(ctx, &state, now)
		if err != nil {
			return timerdto.TickOutput{}, err
		}
	case state.Mode == domain.ModeGoal && state.Countdown.Done(now):
		events, err = i.completeGoalCountdown(ctx, &state, now)
		if err != nil {
			return timerdto.TickOutput{}, err
		}
	}

	if err := i.states.Save(ctx, state); err != nil {
		return timerdto.TickOutput{}, err
	}
	out := timerdto.TickOutput{Status: i.status(state, now)}
	for _, event := range events {
		i.notify(ctx, event)
		out.Events = append(out.Events, timerdto.EventOutput{
			Kind:     string(event.Kind),
			Category: event.Category,
			At:       event.At,
		})
	}
	return out, nil
}

// completeInterval handles the pomodoro rollover in both directions:
// work → break (short, or long every Nth cycle) and break → work.
func (i *Interactor) completeInterval(ctx context.Context, state *domain.State, now time.Time) ([]domain.Event, error) {
	session := state.Session
	if session.IsBreak {
		session.Completed = true
		nextCategory := state.LastWorkCategory
		if nextCategory == "" {
			nextCategory = i.settings.DefaultCategory
		}
		record, _, err := i.transition(ctx, state, now, nextCategory, true)
		if err != nil {
			return nil, err
		}
		state.Countdown.Start(now, i.settings.WorkDuration())
		if !i.settings.AutoStartWork {
			state.Countdown.Pause(now)
			state.Session.Pause(now)
		}
		return []domain.Event{{Kind: domain.EventBreakComplete, Category: record.Category, At: now}}, nil
	}

	session.PomodorosCompleted++
	session.Completed = true
	state.WorkCycles++
	breakDuration := i.settings.ShortBreakDuration()
	if state.WorkCycles%i.settings.LongBreakEvery == 0 {
		breakDuration = i.settings.LongBreakDuration()
	}
	record, _, err := i.transition(ctx, state, now, i.settings.BreakCategory, true)
	if err != nil {
		return nil, err
	}
	state.Countdown.Start(now, breakDuration)
	if !i.settings.AutoStartBreak {
		state.Countdown.Pause(now)
		state.Session.Pause(now)
	}
	return []domain.Event{{Kind: domain.EventIntervalComplete, Category: record.Category, At: now}}, nil
}

// completeGoalCountdown stops the timer and settles the goal; no new session
// is started.
func (i *Interactor) completeGoalCountdown(ctx context.Context, state *domain.State, now time.Time) ([]domain.Event, error) {
	state.Session.Completed = true
	record, _, err := i.transition(ctx, state, now, "", true)
	if err != nil {
		return nil, err
	}
	state.Countdown = domain.Countdown{}
	state.CarriedElapsed = 0
	events := []domain.Event{}
	flipped, err := i.goals.Achieve(ctx, record.Category)
	if err != nil {
		return nil, err
	}
	if flipped {
		events = append(events, domain.Event{Kind: domain.EventGoalAchieved, Category: record.Category, At: now})
	}
	return events, nil
}

func (i *Interactor) Status(ctx context.Context) (timerdto.StatusOutput, error) {
	state, err := i.load(ctx)
	if err != nil {
		return timerdto.StatusOutput{}, err
	}
	return i.status(state, i.svc.Now()), nil
}

// SwitchCategory finalizes the live session, attributes its time, and starts
// a new session under the new category with the countdown and run state
// untouched: the clock keeps going, only attribution changes.
func (i *Interactor) SwitchCategory(ctx context.Context, category string) (timerdto.StatusOutput, error) {
	category = strings.TrimSpace(category)
	if category == "" {
		return timerdto.StatusOutput{}, apperrors.ErrInvalidInput
	}
	state, err := i.load(ctx)
	if err != nil {
		return timerdto.StatusOutput{}, err
	}
	if !state.Active() {
		return timerdto.StatusOutput{}, apperrors.ErrNoActiveSession
	}
	now := i.svc.Now()
	if _, _, err := i.transition(ctx, &state, now, category, true); err != nil {
		return timerdto.StatusOutput{}, err
	}
	if err := i.states.Save(ctx, state); err != nil {
		return timerdto.StatusOutput{}, err
	}
	return i.status(state, now), nil
}

// SwitchMode finalizes the live session first so no session data is lost,
// then leaves the engine idle in the new mode.
func (i *Interactor) SwitchMode(ctx context.Context, modeName string) (timerdto.StatusOutput, error) {
	mode := domain.Mode(strings.ToLower(strings.TrimSpace(modeName)))
	if err := mode.Validate(); err != nil {
		return timerdto.StatusOutput{}, err
	}
	state, err := i.load(ctx)
	if err != nil {
		return timerdto.StatusOutput{}, err
	}
	now := i.svc.Now()
	if state.Active() {
		if _, _, err := i.transition(ctx, &state, now, "", true); err != nil {
			return timerdto.StatusOutput{}, err
		}
	}
	state.Mode = mode
	state.Countdown = domain.Countdown{}
	state.CarriedElapsed = 0
	if err := i.states.Save(ctx, state); err != nil {
		return timerdto.StatusOutput{}, err
	}
	return i.status(state, now), nil
}

// transition is the single finalize-then-recreate primitive: it ends the
// live session, persists it, attributes its time to the category's goal, and
// (when newCategory is non-empty) starts the replacement session, carrying
// the paused state across so the swap is invisible to the clock. The current
// session reference is replaced before returning; late activity events can
// only ever reach the new session.
func (i *Interactor) transition(ctx context.Context, state *domain.State, now time.Time, newCategory string, attribute bool) (sessiondomain.Record, string, error) {
	session := state.Session
	wasPaused := session.Paused()
	if newCategory != "" && state.Mode == domain.ModeStopwatch {
		state.CarriedElapsed += session.Elapsed(now)
	}
	record, path, err := i.svc.Finalize(ctx, session, session.Completed)
	if err != nil {
		return sessiondomain.Record{}, "", err
	}
	state.Session = nil

	if attribute && !record.IsBreak {
		accrued, err := i.goals.Accrue(ctx, goaldto.AccrueInput{
			Category: record.Category,
			Duration: time.Duration(record.DurationMin) * time.Minute,
		})
		if err != nil {
			return sessiondomain.Record{}, "", err
		}
		if accrued.JustAchieved {
			i.notify(ctx, domain.Event{Kind: domain.EventGoalAchieved, Category: record.Category, At: now})
		}
	}

	if newCategory != "" {
		next := i.svc.NewSession(newCategory, i.settings.BreakCategory)
		if wasPaused {
			next.Pause(now)
		}
		if !next.IsBreak {
			state.LastWorkCategory = newCategory
		}
		state.Session = next
	}
	return record, path, nil
}

func (i *Interactor) notify(ctx context.Context, event domain.Event) {
	if i.notifier == nil {
		return
	}
	_ = i.notifier.Notify(ctx, event)
}

func (i *Interactor) status(state domain.State, now time.Time) timerdto.StatusOutput {
	out := timerdto.StatusOutput{
		Mode:       string(state.Mode),
		WorkCycles: state.WorkCycles,
	}
	if !state.Active() {
		return out
	}
	session := state.Session
	out.Active = true
	out.Paused = session.Paused()
	out.OnBreak = session.IsBreak
	out.Category = session.Category
	out.SessionID = session.ID
	out.StartedAt = session.StartedAt
	out.Elapsed = session.Elapsed(now)
	if state.Mode == domain.ModeStopwatch {
		out.Elapsed += state.CarriedElapsed
	}
	out.Pomodoros = session.PomodorosCompleted
	out.Distractions = len(session.Distractions)
	out.WordCount = session.WordCount
	if state.Mode != domain.ModeStopwatch {
		out.Remaining = state.Countdown.RemainingAt(now)
	}
	return out
}
