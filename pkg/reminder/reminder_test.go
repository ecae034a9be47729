package reminder

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestScheduleValidate(t *testing.T) {
	tests := []struct {
		name  string
		kind  Kind
		sched Schedule
		ok    bool
	}{
		{"once with instant", Once, Schedule{At: At(time.Now())}, true},
		{"once without instant", Once, Schedule{}, false},
		{"daily", Daily, Schedule{Hour: 8}, true},
		{"daily hour too high", Daily, Schedule{Hour: 24}, false},
		{"daily negative minute", Daily, Schedule{Hour: 8, Minute: -1}, false},
		{"weekly", Weekly, Schedule{Weekday: 6, Hour: 17}, true},
		{"weekly weekday zero", Weekly, Schedule{Hour: 17}, false},
		{"weekly weekday eight", Weekly, Schedule{Weekday: 8, Hour: 17}, false},
		{"interval", Interval, Schedule{EverySeconds: 300}, true},
		{"interval zero", Interval, Schedule{}, false},
		{"unknown kind", Kind("hourly"), Schedule{}, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.sched.Validate(tc.kind)
			if tc.ok && err != nil {
				t.Errorf("Validate() = %v, want nil", err)
			}
			if !tc.ok {
				if err == nil {
					t.Fatal("Validate() = nil, want error")
				}
				if !errors.Is(err, ErrInvalidRecurrence) {
					t.Errorf("error %v is not ErrInvalidRecurrence", err)
				}
			}
		})
	}
}

func TestScheduleEveryFloor(t *testing.T) {
	if got := (Schedule{EverySeconds: 10}).Every(); got != time.Minute {
		t.Errorf("Every() = %v, want 1m floor", got)
	}
	if got := (Schedule{EverySeconds: 300}).Every(); got != 5*time.Minute {
		t.Errorf("Every() = %v, want 5m", got)
	}
}

func TestNewRecordDefaults(t *testing.T) {
	r := New("call mom", Once, Schedule{At: At(time.Now().Add(time.Hour))})
	if r.Key == "" {
		t.Error("key not assigned")
	}
	if r.Category != Personal || r.Priority != Medium {
		t.Errorf("defaults = %s/%s, want Personal/medium", r.Category, r.Priority)
	}
	if r.State != "" {
		t.Errorf("state = %q before scheduling, want empty", r.State)
	}

	other := New("call mom", Once, Schedule{At: At(time.Now().Add(time.Hour))})
	if r.Key == other.Key {
		t.Error("keys collide")
	}
}

func TestRecurring(t *testing.T) {
	if (&Record{Kind: Once}).Recurring() {
		t.Error("once is not recurring")
	}
	for _, k := range []Kind{Daily, Weekly, Interval} {
		if !(&Record{Kind: k}).Recurring() {
			t.Errorf("%s should be recurring", k)
		}
	}
}

func TestTimestampJSON(t *testing.T) {
	ts := At(time.Date(2024, 1, 2, 19, 0, 0, 0, time.UTC))
	b, err := json.Marshal(ts)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `"2024-01-02T19:00:00Z"` {
		t.Errorf("marshal = %s", b)
	}

	var back Timestamp
	if err := json.Unmarshal(b, &back); err != nil {
		t.Fatal(err)
	}
	if !back.Equal(ts.Time) {
		t.Errorf("round trip = %v, want %v", back, ts)
	}

	var zero Timestamp
	b, err = json.Marshal(&zero)
	if err != nil {
		t.Fatal(err)
	}
	if string(b) != `""` {
		t.Errorf("zero marshal = %s, want empty string", b)
	}
}

func TestFromDraftRelative(t *testing.T) {
	now := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	d := &Draft{ActionText: "call mom", TriggerSeconds: 1800}

	r, err := FromDraft(d, now)
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind != Once {
		t.Errorf("kind = %s, want once", r.Kind)
	}
	want := now.Add(30 * time.Minute)
	if !r.Schedule.At.Equal(want) {
		t.Errorf("at = %v, want %v", r.Schedule.At, want)
	}
}

func TestFromDraftPrefersInstant(t *testing.T) {
	now := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	at := now.Add(9 * time.Hour)
	d := &Draft{ActionText: "take medicine", TriggerSeconds: 60, TriggerInstant: At(at)}

	r, err := FromDraft(d, now)
	if err != nil {
		t.Fatal(err)
	}
	if !r.Schedule.At.Equal(at) {
		t.Errorf("at = %v, want the resolved instant %v", r.Schedule.At, at)
	}
}

func TestFromDraftRecurrence(t *testing.T) {
	now := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	d := &Draft{
		ActionText: "exercise",
		Category:   Health,
		Priority:   High,
		Recurrence: &Recurrence{Kind: Daily, Hour: 8},
	}

	r, err := FromDraft(d, now)
	if err != nil {
		t.Fatal(err)
	}
	if r.Kind != Daily || r.Schedule.Hour != 8 || r.Schedule.Minute != 0 {
		t.Errorf("schedule = %+v", r)
	}
	if r.Category != Health || r.Priority != High {
		t.Errorf("carried fields = %s/%s", r.Category, r.Priority)
	}
}

func TestFromDraftRejectsBadRecurrence(t *testing.T) {
	now := time.Now()
	d := &Draft{
		ActionText: "broken",
		Recurrence: &Recurrence{Kind: Weekly, Weekday: 9, Hour: 8},
	}
	if _, err := FromDraft(d, now); !errors.Is(err, ErrInvalidRecurrence) {
		t.Errorf("err = %v, want ErrInvalidRecurrence", err)
	}
}

func TestFromDraftFloorsShortDelay(t *testing.T) {
	now := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)
	d := &Draft{ActionText: "blink", TriggerSeconds: 5}

	r, err := FromDraft(d, now)
	if err != nil {
		t.Fatal(err)
	}
	want := now.Add(MinIntervalSeconds * time.Second)
	if !r.Schedule.At.Equal(want) {
		t.Errorf("at = %v, want floored %v", r.Schedule.At, want)
	}
}

func TestParseCategoryAndPriority(t *testing.T) {
	if c, err := ParseCategory("work"); err != nil || c != Work {
		t.Errorf("ParseCategory(work) = %v, %v", c, err)
	}
	if _, err := ParseCategory("chores"); err == nil {
		t.Error("ParseCategory accepted unknown name")
	}
	if p, err := ParsePriority("URGENT"); err != nil || p != Urgent {
		t.Errorf("ParsePriority(URGENT) = %v, %v", p, err)
	}
	if _, err := ParsePriority("whenever"); err == nil {
		t.Error("ParsePriority accepted unknown name")
	}
}
