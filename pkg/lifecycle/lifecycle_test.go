package lifecycle

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"tableflip.dev/nudge/pkg/alarm"
	"tableflip.dev/nudge/pkg/reminder"
	"tableflip.dev/nudge/pkg/schedule"
	"tableflip.dev/nudge/pkg/store"
)

func newTestManager(t *testing.T) (*Manager, *alarm.Fake, *store.Store) {
	t.Helper()
	s, err := store.Open(store.PathConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	fake := alarm.NewFake()
	engine := &schedule.Engine{
		Backend: fake,
		Records: s.Records(),
		Log:     zerolog.Nop(),
	}
	m := &Manager{
		Records: s.Records(),
		Snoozes: s.Snoozes(),
		Backend: fake,
		Engine:  engine,
		Log:     zerolog.Nop(),
	}
	return m, fake, s
}

func scheduleOne(t *testing.T, m *Manager, action string) *reminder.Record {
	t.Helper()
	rec := reminder.New(action, reminder.Once,
		reminder.Schedule{At: reminder.At(time.Now().Add(time.Hour))})
	if err := m.Engine.Schedule(context.Background(), rec); err != nil {
		t.Fatalf("schedule: %v", err)
	}
	return rec
}

func TestCancelIsIdempotent(t *testing.T) {
	m, fake, s := newTestManager(t)
	ctx := context.Background()
	rec := scheduleOne(t, m, "call mom")

	if err := m.Cancel(ctx, rec.Key); err != nil {
		t.Fatalf("cancel: %v", err)
	}
	got, _, _ := s.Records().Get(rec.Key)
	if got.State != reminder.Cancelled {
		t.Errorf("state = %q, want cancelled", got.State)
	}
	if len(got.AlarmIDs) != 0 {
		t.Errorf("alarm ids = %v, want none", got.AlarmIDs)
	}
	if fake.Live() != 0 {
		t.Errorf("backend still holds %d alarms", fake.Live())
	}

	// Second cancel is a no-op, not an error.
	if err := m.Cancel(ctx, rec.Key); err != nil {
		t.Errorf("second cancel errored: %v", err)
	}
	got, _, _ = s.Records().Get(rec.Key)
	if got.State != reminder.Cancelled {
		t.Errorf("state changed on second cancel: %q", got.State)
	}
}

func TestCancelUnknownKeyIsNoOp(t *testing.T) {
	m, _, _ := newTestManager(t)
	if err := m.Cancel(context.Background(), "no-such-key"); err != nil {
		t.Errorf("cancel of unknown key errored: %v", err)
	}
}

func TestComplete(t *testing.T) {
	m, fake, s := newTestManager(t)
	rec := scheduleOne(t, m, "take medicine")

	if err := m.Complete(context.Background(), rec.Key); err != nil {
		t.Fatalf("complete: %v", err)
	}
	got, _, _ := s.Records().Get(rec.Key)
	if got.State != reminder.Completed {
		t.Errorf("state = %q, want completed", got.State)
	}
	if fake.Live() != 0 {
		t.Errorf("backend still holds %d alarms", fake.Live())
	}
}

func TestSnooze(t *testing.T) {
	m, fake, s := newTestManager(t)
	ctx := context.Background()
	rec := scheduleOne(t, m, "stand up")
	firstID := rec.AlarmIDs[0]

	if err := m.Snooze(ctx, rec.Key, 10*time.Minute); err != nil {
		t.Fatalf("snooze: %v", err)
	}

	got, _, _ := s.Records().Get(rec.Key)
	if got.State != reminder.Snoozed {
		t.Errorf("state = %q, want snoozed", got.State)
	}
	if got.SnoozeCount != 1 {
		t.Errorf("snoozeCount = %d, want 1", got.SnoozeCount)
	}
	if len(got.AlarmIDs) != 1 {
		t.Fatalf("alarm ids = %v, want exactly one", got.AlarmIDs)
	}
	if got.AlarmIDs[0] == firstID {
		t.Error("snooze kept the old identifier")
	}
	if fake.Live() != 1 {
		t.Errorf("backend live = %d, want 1", fake.Live())
	}

	// Repeated snoozes keep replacing and counting.
	if err := m.Snooze(ctx, rec.Key, 5*time.Minute); err != nil {
		t.Fatalf("second snooze: %v", err)
	}
	got, _, _ = s.Records().Get(rec.Key)
	if got.SnoozeCount != 2 {
		t.Errorf("snoozeCount = %d, want 2", got.SnoozeCount)
	}
	if len(got.AlarmIDs) != 1 || fake.Live() != 1 {
		t.Errorf("want exactly one live alarm, record=%v live=%d", got.AlarmIDs, fake.Live())
	}

	entries := s.Snoozes().List(ctx)
	if len(entries) != 1 || entries[0].Count != 2 {
		t.Errorf("snooze entries = %+v", entries)
	}
}

func TestSnoozeTerminalRecordIsNoOp(t *testing.T) {
	m, _, s := newTestManager(t)
	ctx := context.Background()
	rec := scheduleOne(t, m, "done already")

	if err := m.Complete(ctx, rec.Key); err != nil {
		t.Fatal(err)
	}
	if err := m.Snooze(ctx, rec.Key, 10*time.Minute); err != nil {
		t.Errorf("snooze of terminal record errored: %v", err)
	}
	got, _, _ := s.Records().Get(rec.Key)
	if got.State != reminder.Completed || got.SnoozeCount != 0 {
		t.Errorf("terminal record mutated: %+v", got)
	}
}

func TestHandleAction(t *testing.T) {
	m, _, s := newTestManager(t)
	ctx := context.Background()

	snoozed := scheduleOne(t, m, "snooze me")
	if err := m.HandleAction(ctx, snoozed.Key, ActionSnooze5); err != nil {
		t.Fatalf("snooze_5: %v", err)
	}
	got, _, _ := s.Records().Get(snoozed.Key)
	if got.State != reminder.Snoozed || got.SnoozeCount != 1 {
		t.Errorf("after snooze_5: %+v", got)
	}

	dismissed := scheduleOne(t, m, "dismiss me")
	if err := m.HandleAction(ctx, dismissed.Key, ActionDismiss); err != nil {
		t.Fatalf("dismiss: %v", err)
	}
	got, _, _ = s.Records().Get(dismissed.Key)
	if got.State != reminder.Completed {
		t.Errorf("after dismiss: state = %q", got.State)
	}

	// Unknown actions are ignored.
	if err := m.HandleAction(ctx, snoozed.Key, "explode"); err != nil {
		t.Errorf("unknown action errored: %v", err)
	}
}

func TestCleanupExpired(t *testing.T) {
	m, _, s := newTestManager(t)
	ctx := context.Background()
	now := time.Now()

	fresh := store.SnoozeEntry{
		Key:        "fresh",
		WakeUpTime: reminder.Timestamp{Time: now.Add(-time.Hour)},
	}
	stale := store.SnoozeEntry{
		Key:        "stale",
		WakeUpTime: reminder.Timestamp{Time: now.Add(-48 * time.Hour)},
	}
	if err := s.Snoozes().Put(fresh); err != nil {
		t.Fatal(err)
	}
	if err := s.Snoozes().Put(stale); err != nil {
		t.Fatal(err)
	}

	if removed := m.CleanupExpired(ctx, now); removed != 1 {
		t.Errorf("removed = %d, want 1", removed)
	}
	entries := s.Snoozes().List(ctx)
	if len(entries) != 1 || entries[0].Key != "fresh" {
		t.Errorf("remaining entries = %+v", entries)
	}
}

func TestStats(t *testing.T) {
	m, _, _ := newTestManager(t)
	ctx := context.Background()

	scheduleOne(t, m, "one")
	scheduleOne(t, m, "two")
	daily := reminder.New("exercise", reminder.Daily, reminder.Schedule{Hour: 8})
	if err := m.Engine.Schedule(ctx, daily); err != nil {
		t.Fatal(err)
	}
	snoozer := scheduleOne(t, m, "three")
	if err := m.Snooze(ctx, snoozer.Key, 10*time.Minute); err != nil {
		t.Fatal(err)
	}
	cancelled := scheduleOne(t, m, "four")
	if err := m.Cancel(ctx, cancelled.Key); err != nil {
		t.Fatal(err)
	}

	st, err := m.Stats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if st.Active != 3 {
		t.Errorf("active = %d, want 3", st.Active)
	}
	if st.Snoozed != 1 {
		t.Errorf("snoozed = %d, want 1", st.Snoozed)
	}
	if st.LiveAlarms != 4 {
		t.Errorf("liveAlarms = %d, want 4", st.LiveAlarms)
	}
	if st.ByKind[reminder.Once] != 2 || st.ByKind[reminder.Daily] != 1 {
		t.Errorf("byKind = %v", st.ByKind)
	}
}
