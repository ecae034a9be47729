package alarm

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestTimerFires(t *testing.T) {
	fired := make(chan Payload, 1)
	b := NewTimer(zerolog.Nop(), func(p Payload) { fired <- p })

	at := time.Now().Add(20 * time.Millisecond)
	id, err := b.Register(context.Background(), Absolute(at), Payload{Key: "k1"})
	if err != nil {
		t.Fatal(err)
	}
	if id == "" {
		t.Fatal("empty identifier")
	}

	select {
	case p := <-fired:
		if p.Key != "k1" {
			t.Errorf("payload key = %q", p.Key)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("alarm never fired")
	}

	regs, err := b.List(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(regs) != 0 {
		t.Errorf("one-shot alarm still listed after firing: %v", regs)
	}
}

func TestTimerCancel(t *testing.T) {
	fired := make(chan Payload, 1)
	b := NewTimer(zerolog.Nop(), func(p Payload) { fired <- p })

	id, err := b.Register(context.Background(), Absolute(time.Now().Add(50*time.Millisecond)), Payload{Key: "k1"})
	if err != nil {
		t.Fatal(err)
	}
	if err := b.Cancel(context.Background(), id); err != nil {
		t.Fatal(err)
	}
	// Unknown identifier is a no-op.
	if err := b.Cancel(context.Background(), "nope"); err != nil {
		t.Errorf("cancel of unknown id errored: %v", err)
	}

	select {
	case <-fired:
		t.Fatal("cancelled alarm fired")
	case <-time.After(150 * time.Millisecond):
	}
}

func TestNextClock(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC) // Monday

	tests := []struct {
		name  string
		clock Clock
		want  time.Time
	}{
		{"later today", Clock{Hour: 15, Minute: 30}, time.Date(2024, 1, 1, 15, 30, 0, 0, time.UTC)},
		{"passed today", Clock{Hour: 9, Minute: 0}, time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC)},
		{"later this week", Clock{Hour: 9, Minute: 0, Weekday: 6}, time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)},
		{"same weekday passed", Clock{Hour: 9, Minute: 0, Weekday: 2}, time.Date(2024, 1, 8, 9, 0, 0, 0, time.UTC)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := nextClock(tc.clock, now)
			if !got.Equal(tc.want) {
				t.Errorf("nextClock = %v, want %v", got, tc.want)
			}
			if !got.After(now) {
				t.Error("nextClock not strictly after now")
			}
		})
	}
}
