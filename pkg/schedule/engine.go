// Package schedule turns confirmed reminders into live backend alarms and
// durable records.
package schedule

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/nudge/pkg/alarm"
	"tableflip.dev/nudge/pkg/reminder"
	"tableflip.dev/nudge/pkg/store"
)

var (
	// ErrSchedulingFailed means every registration strategy was exhausted.
	ErrSchedulingFailed = errors.New("schedule: all registration strategies failed")

	// ErrBackendUnavailable means the storage collaborator rejected the
	// write after an alarm was already registered.
	ErrBackendUnavailable = errors.New("schedule: backend unavailable")
)

// Engine registers alarms for reminder records. Strategies are tried in
// order against the platform backend, falling back to the software timer
// when the platform rejects every trigger shape.
type Engine struct {
	Backend  alarm.Backend
	Fallback alarm.Backend // software timer; optional
	Records  *store.Records
	Log      zerolog.Logger
}

// Schedule computes the record's first occurrence, registers an alarm for
// it, and persists the record in the active state. The caller reports the
// resolved fire time to the user; the engine performs no UI.
func (e *Engine) Schedule(ctx context.Context, rec *reminder.Record) error {
	return e.scheduleAt(ctx, rec, time.Now())
}

func (e *Engine) scheduleAt(ctx context.Context, rec *reminder.Record, now time.Time) error {
	if err := rec.Schedule.Validate(rec.Kind); err != nil {
		return err
	}

	occurrence := FirstOccurrence(rec.Kind, rec.Schedule, now)
	id, err := e.register(ctx, rec, occurrence)
	if err != nil {
		return err
	}

	rec.State = reminder.Active
	rec.AlarmIDs = []string{id}
	if rec.Recurring() {
		rec.NextOccurrence = reminder.At(occurrence)
	} else {
		rec.NextOccurrence = nil
	}
	rec.Touch()

	if err := e.Records.Save(rec); err != nil {
		// Roll the orphaned alarm back; losing that race leaves a stray
		// firing, not a stray record.
		if cerr := e.cancelAlarm(ctx, id); cerr != nil {
			e.Log.Warn().Err(cerr).Str("alarm", id).Msg("rollback cancel failed")
		}
		return fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	e.Log.Info().Str("key", rec.Key).Str("kind", string(rec.Kind)).
		Time("occurrence", occurrence).Str("alarm", id).Msg("reminder scheduled")
	return nil
}

// RenewIfDue advances a recurring record whose occurrence has passed:
// computes the next occurrence, registers a fresh alarm, then retires the
// old identifiers. Returns true when a renewal happened.
func (e *Engine) RenewIfDue(ctx context.Context, rec *reminder.Record, now time.Time) (bool, error) {
	if !rec.Recurring() || rec.State.Terminal() {
		return false, nil
	}
	if rec.NextOccurrence != nil && rec.NextOccurrence.After(now) {
		return false, nil
	}

	next := NextOccurrence(rec.Kind, rec.Schedule, now)
	id, err := e.register(ctx, rec, next)
	if err != nil {
		return false, err
	}

	// Both identifiers are live for the moment between registration and
	// retirement; the record tracks them all.
	old := rec.AlarmIDs
	rec.AlarmIDs = append([]string{id}, old...)
	for _, oldID := range old {
		if cerr := e.cancelAlarm(ctx, oldID); cerr != nil {
			e.Log.Warn().Err(cerr).Str("alarm", oldID).Msg("retire old alarm failed")
		}
	}
	rec.AlarmIDs = []string{id}
	rec.NextOccurrence = reminder.At(next)
	rec.Touch()

	if err := e.Records.Save(rec); err != nil {
		return false, fmt.Errorf("%w: %v", ErrBackendUnavailable, err)
	}

	e.Log.Info().Str("key", rec.Key).Time("occurrence", next).Msg("recurring reminder renewed")
	return true, nil
}

// register walks the strategy list and accepts the first identifier.
func (e *Engine) register(ctx context.Context, rec *reminder.Record, occurrence time.Time) (string, error) {
	payload := alarm.Payload{Key: rec.Key, Title: rec.Action}

	var failures []string
	for _, s := range e.strategies(rec, occurrence) {
		if s.backend == nil {
			continue
		}
		id, err := s.backend.Register(ctx, s.trigger, payload)
		if err == nil && id != "" {
			if len(failures) > 0 {
				e.Log.Debug().Str("key", rec.Key).Str("strategy", s.name).
					Strs("failed", failures).Msg("fell back to later strategy")
			}
			return id, nil
		}
		if err == nil {
			err = errors.New("empty identifier")
		}
		failures = append(failures, fmt.Sprintf("%s: %v", s.name, err))
	}

	return "", fmt.Errorf("%w: %s", ErrSchedulingFailed, strings.Join(failures, "; "))
}

type strategy struct {
	name    string
	backend alarm.Backend
	trigger alarm.Trigger
}

// strategies orders the registration attempts: the precise calendar or
// absolute trigger first, the interval trigger as the platform fallback,
// and the software timer last.
func (e *Engine) strategies(rec *reminder.Record, occurrence time.Time) []strategy {
	delay := time.Until(occurrence)
	if delay < 0 {
		delay = 0
	}

	repeats := rec.Kind == reminder.Interval
	interval := delay
	if repeats {
		interval = rec.Schedule.Every()
	}

	var precise alarm.Trigger
	switch rec.Kind {
	case reminder.Daily:
		precise = alarm.Calendar(alarm.Clock{Hour: rec.Schedule.Hour, Minute: rec.Schedule.Minute}, true)
	case reminder.Weekly:
		precise = alarm.Calendar(alarm.Clock{
			Hour:    rec.Schedule.Hour,
			Minute:  rec.Schedule.Minute,
			Weekday: rec.Schedule.Weekday,
		}, true)
	default:
		precise = alarm.Absolute(occurrence)
	}

	list := []strategy{
		{name: "calendar", backend: e.Backend, trigger: precise},
		{name: "interval", backend: e.Backend, trigger: alarm.Interval(interval, repeats)},
	}
	if e.Fallback != nil {
		list = append(list, strategy{name: "timer", backend: e.Fallback, trigger: alarm.Absolute(occurrence)})
	}
	return list
}

// cancelAlarm retires an identifier on whichever backend holds it; cancel
// of an unknown id is a no-op on both.
func (e *Engine) cancelAlarm(ctx context.Context, id string) error {
	err := e.Backend.Cancel(ctx, id)
	if e.Fallback != nil {
		if ferr := e.Fallback.Cancel(ctx, id); err == nil {
			err = ferr
		}
	}
	return err
}
