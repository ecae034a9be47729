// Package lifecycle owns the durable reminder record set and its state
// machine: active and snoozed records carry live alarms; completed and
// cancelled records are terminal and carry none.
package lifecycle

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/nudge/pkg/alarm"
	"tableflip.dev/nudge/pkg/reminder"
	"tableflip.dev/nudge/pkg/schedule"
	"tableflip.dev/nudge/pkg/store"
)

// expiredSnoozeAge is how long a snooze-tracking entry outlives its
// wake-up time before the sweep removes it.
const expiredSnoozeAge = 24 * time.Hour

// Manager drives lifecycle transitions. Operations on the same key are
// serialized by a per-key lock; operations on different keys are
// independent.
type Manager struct {
	Records *store.Records
	Snoozes *store.Snoozes
	Backend alarm.Backend
	Engine  *schedule.Engine
	Log     zerolog.Logger

	locks keyedLocks
}

// Cancel removes every live alarm for the record and moves it to the
// cancelled state. Missing or already-terminal records are logged no-ops.
func (m *Manager) Cancel(ctx context.Context, key string) error {
	return m.finish(ctx, key, reminder.Cancelled)
}

// Complete is Cancel with done semantics: the record lands in the
// completed state so callers can keep it in their own done collection.
func (m *Manager) Complete(ctx context.Context, key string) error {
	return m.finish(ctx, key, reminder.Completed)
}

func (m *Manager) finish(ctx context.Context, key string, terminal reminder.State) error {
	unlock := m.locks.lock(key)
	defer unlock()

	rec, ok, err := m.Records.Get(key)
	if err != nil {
		return err
	}
	if !ok {
		m.Log.Debug().Str("key", key).Msg("lifecycle op on unknown key, ignoring")
		return nil
	}
	if rec.State.Terminal() {
		return nil
	}

	m.cancelAlarms(ctx, rec)
	rec.State = terminal
	rec.AlarmIDs = nil
	rec.NextOccurrence = nil
	rec.Touch()
	if err := m.Records.Save(rec); err != nil {
		return err
	}

	if err := m.Snoozes.Delete(key); err != nil {
		m.Log.Warn().Err(err).Str("key", key).Msg("drop snooze entry failed")
	}
	m.Log.Info().Str("key", key).Str("state", string(terminal)).Msg("reminder finished")
	return nil
}

// Snooze replaces the record's live alarms with a single one-shot alarm
// delay from now, bumping the snooze counter. A record may be snoozed
// repeatedly; each snooze fully replaces the prior identifiers.
func (m *Manager) Snooze(ctx context.Context, key string, delay time.Duration) error {
	unlock := m.locks.lock(key)
	defer unlock()

	rec, ok, err := m.Records.Get(key)
	if err != nil {
		return err
	}
	if !ok {
		m.Log.Debug().Str("key", key).Msg("snooze on unknown key, ignoring")
		return nil
	}
	if rec.State.Terminal() {
		return nil
	}

	m.cancelAlarms(ctx, rec)
	rec.AlarmIDs = nil
	rec.SnoozeCount++

	now := time.Now()
	wakeUp := now.Add(delay)
	rec.Kind = reminder.Once
	rec.Schedule = reminder.Schedule{At: reminder.At(wakeUp)}
	if err := m.Engine.Schedule(ctx, rec); err != nil {
		return fmt.Errorf("snooze %s: %w", key, err)
	}

	rec.State = reminder.Snoozed
	rec.Touch()
	if err := m.Records.Save(rec); err != nil {
		return err
	}

	entry := store.SnoozeEntry{
		Key:        key,
		WakeUpTime: reminder.Timestamp{Time: wakeUp},
		Count:      rec.SnoozeCount,
		CreatedAt:  reminder.Timestamp{Time: now},
	}
	if err := m.Snoozes.Put(entry); err != nil {
		m.Log.Warn().Err(err).Str("key", key).Msg("record snooze entry failed")
	}

	m.Log.Info().Str("key", key).Dur("delay", delay).Int("count", rec.SnoozeCount).
		Msg("reminder snoozed")
	return nil
}

// cancelAlarms retires the record's identifiers best-effort: removal
// failures are logged, never raised, because removal of an already-fired
// alarm is not an error.
func (m *Manager) cancelAlarms(ctx context.Context, rec *reminder.Record) {
	for _, id := range rec.AlarmIDs {
		if err := m.Backend.Cancel(ctx, id); err != nil {
			m.Log.Warn().Err(err).Str("key", rec.Key).Str("alarm", id).
				Msg("alarm removal failed, continuing")
		}
	}
}

// CleanupExpired sweeps snooze-tracking entries whose wake-up time is more
// than a day in the past. They are diagnostic history, not live schedule.
func (m *Manager) CleanupExpired(ctx context.Context, now time.Time) int {
	removed := 0
	for _, e := range m.Snoozes.List(ctx) {
		if now.Sub(e.WakeUpTime.Time) <= expiredSnoozeAge {
			continue
		}
		if err := m.Snoozes.Delete(e.Key); err != nil {
			m.Log.Warn().Err(err).Str("key", e.Key).Msg("drop expired snooze entry failed")
			continue
		}
		removed++
	}
	if removed > 0 {
		m.Log.Info().Int("removed", removed).Msg("expired snooze entries cleaned up")
	}
	return removed
}
