package store

import (
	"context"
	"reflect"
	"testing"
	"time"

	"tableflip.dev/nudge/pkg/reminder"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(PathConfig(t.TempDir()))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	return s
}

func TestRecordRoundTrip(t *testing.T) {
	s := newTestStore(t)
	records := s.Records()

	at := time.Date(2024, 1, 1, 19, 0, 0, 0, time.UTC)
	rec := reminder.New("take medicine", reminder.Once, reminder.Schedule{At: reminder.At(at)})
	rec.Category = reminder.Health
	rec.Priority = reminder.High
	rec.State = reminder.Active
	rec.AlarmIDs = []string{"alarm-1"}
	rec.SnoozeCount = 2
	// The wire format keeps second precision, so pin the stamps.
	rec.CreatedAt = reminder.Timestamp{Time: at.Add(-time.Hour)}
	rec.UpdatedAt = reminder.Timestamp{Time: at.Add(-30 * time.Minute)}

	if err := records.Save(rec); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, ok, err := records.Get(rec.Key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if !ok {
		t.Fatal("record not found after save")
	}
	if !reflect.DeepEqual(got, rec) {
		t.Errorf("round trip mismatch:\n got %+v\nwant %+v", got, rec)
	}
}

func TestRecordsGetMissing(t *testing.T) {
	s := newTestStore(t)

	_, ok, err := s.Records().Get("no-such-key")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if ok {
		t.Error("expected ok=false for missing key")
	}
}

func TestRecordsListSorted(t *testing.T) {
	s := newTestStore(t)
	records := s.Records()

	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	for i, action := range []string{"second", "first", "third"} {
		rec := reminder.New(action, reminder.Interval, reminder.Schedule{EverySeconds: 120})
		offsets := map[string]time.Duration{"first": 0, "second": time.Hour, "third": 2 * time.Hour}
		rec.CreatedAt = reminder.Timestamp{Time: base.Add(offsets[action])}
		rec.UpdatedAt = rec.CreatedAt
		_ = i
		if err := records.Save(rec); err != nil {
			t.Fatalf("save: %v", err)
		}
	}

	all := records.List(context.Background())
	if len(all) != 3 {
		t.Fatalf("len = %d, want 3", len(all))
	}
	want := []string{"first", "second", "third"}
	for i, rec := range all {
		if rec.Action != want[i] {
			t.Errorf("position %d = %q, want %q", i, rec.Action, want[i])
		}
	}
}

func TestNamespacesAreIsolated(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.Set(NamespaceRecords, "a", []byte("1")); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(NamespaceSnoozes, "b", []byte("2")); err != nil {
		t.Fatal(err)
	}

	if keys := s.Keys(ctx, NamespaceRecords); len(keys) != 1 || keys[0] != "a" {
		t.Errorf("records keys = %v", keys)
	}
	if keys := s.Keys(ctx, NamespaceSnoozes); len(keys) != 1 || keys[0] != "b" {
		t.Errorf("snoozes keys = %v", keys)
	}
}

func TestDeleteIsIdempotent(t *testing.T) {
	s := newTestStore(t)

	if err := s.Set(NamespaceRecords, "a", []byte("1")); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(NamespaceRecords, "a"); err != nil {
		t.Fatal(err)
	}
	if err := s.Delete(NamespaceRecords, "a"); err != nil {
		t.Errorf("second delete errored: %v", err)
	}
}

func TestSnoozeEntries(t *testing.T) {
	s := newTestStore(t)
	snoozes := s.Snoozes()
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	e := SnoozeEntry{
		Key:        "k1",
		WakeUpTime: reminder.Timestamp{Time: now.Add(10 * time.Minute)},
		Count:      1,
		CreatedAt:  reminder.Timestamp{Time: now},
	}
	if err := snoozes.Put(e); err != nil {
		t.Fatal(err)
	}

	all := snoozes.List(context.Background())
	if len(all) != 1 {
		t.Fatalf("len = %d, want 1", len(all))
	}
	if all[0].Key != "k1" || all[0].Count != 1 {
		t.Errorf("entry = %+v", all[0])
	}
}

func TestMetaLastRenewDay(t *testing.T) {
	s := newTestStore(t)
	meta := s.Meta()

	day, err := meta.LastRenewDay()
	if err != nil {
		t.Fatal(err)
	}
	if day != "" {
		t.Errorf("expected empty stamp, got %q", day)
	}

	if err := meta.SetLastRenewDay("2024-01-01"); err != nil {
		t.Fatal(err)
	}
	day, err = meta.LastRenewDay()
	if err != nil {
		t.Fatal(err)
	}
	if day != "2024-01-01" {
		t.Errorf("stamp = %q", day)
	}
}

func TestWatchSeesRecordWrites(t *testing.T) {
	s := newTestStore(t)
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	events, err := s.Watch(ctx)
	if err != nil {
		t.Fatalf("watch: %v", err)
	}

	rec := reminder.New("water plants", reminder.Interval, reminder.Schedule{EverySeconds: 3600})
	if err := s.Records().Save(rec); err != nil {
		t.Fatal(err)
	}

	deadline := time.After(2 * time.Second)
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				t.Fatal("event channel closed early")
			}
			if ev.Type == EventRecordChanged && ev.Key == rec.Key {
				return
			}
		case <-deadline:
			t.Fatal("no record-change event observed")
		}
	}
}
