package alarm

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// FireFunc receives the payload of an alarm when it goes off.
type FireFunc func(Payload)

// Timer is a software-timer backend: alarms live only as long as the
// process. It serves as the engine's last-resort strategy and as the
// default backend on hosts without native scheduling.
type Timer struct {
	log  zerolog.Logger
	fire FireFunc

	mu     sync.Mutex
	armed  map[string]*armedTimer
	closed bool
}

type armedTimer struct {
	timer   *time.Timer
	trigger Trigger
	payload Payload
}

// NewTimer builds a timer backend delivering fired payloads to fn. A nil
// fn drops firings after logging them.
func NewTimer(log zerolog.Logger, fn FireFunc) *Timer {
	return &Timer{
		log:   log,
		fire:  fn,
		armed: make(map[string]*armedTimer),
	}
}

func (t *Timer) Register(ctx context.Context, trig Trigger, p Payload) (string, error) {
	delay, err := t.delayFor(trig, time.Now())
	if err != nil {
		return "", err
	}

	id := uuid.NewString()
	t.mu.Lock()
	defer t.mu.Unlock()
	a := &armedTimer{trigger: trig, payload: p}
	a.timer = time.AfterFunc(delay, func() { t.fired(id) })
	t.armed[id] = a

	t.log.Debug().Str("alarm", id).Str("kind", string(trig.Kind())).
		Dur("delay", delay).Msg("timer alarm armed")
	return id, nil
}

func (t *Timer) Cancel(ctx context.Context, id string) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	a, ok := t.armed[id]
	if !ok {
		return nil
	}
	a.timer.Stop()
	delete(t.armed, id)
	t.log.Debug().Str("alarm", id).Msg("timer alarm cancelled")
	return nil
}

func (t *Timer) List(ctx context.Context) ([]Registration, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	regs := make([]Registration, 0, len(t.armed))
	for id, a := range t.armed {
		regs = append(regs, Registration{ID: id, Trigger: a.trigger})
	}
	return regs, nil
}

func (t *Timer) fired(id string) {
	t.mu.Lock()
	a, ok := t.armed[id]
	if !ok {
		t.mu.Unlock()
		return
	}
	if a.trigger.Repeats {
		if delay, err := t.delayFor(a.trigger, time.Now()); err == nil {
			a.timer = time.AfterFunc(delay, func() { t.fired(id) })
		} else {
			delete(t.armed, id)
		}
	} else {
		delete(t.armed, id)
	}
	payload := a.payload
	t.mu.Unlock()

	t.log.Info().Str("alarm", id).Str("key", payload.Key).Msg("alarm fired")
	if t.fire != nil {
		t.fire(payload)
	}
}

// delayFor converts a trigger into the wait before its next firing.
func (t *Timer) delayFor(trig Trigger, now time.Time) (time.Duration, error) {
	switch trig.Kind() {
	case KindAbsolute:
		d := trig.At.Sub(now)
		if d < 0 {
			d = 0
		}
		return d, nil
	case KindInterval:
		return trig.Every, nil
	default:
		return nextClock(*trig.Calendar, now).Sub(now), nil
	}
}

// nextClock finds the next instant matching the calendar clock, strictly
// after now.
func nextClock(c Clock, now time.Time) time.Time {
	next := time.Date(now.Year(), now.Month(), now.Day(), c.Hour, c.Minute, 0, 0, now.Location())
	if c.Weekday >= 1 && c.Weekday <= 7 {
		days := (c.Weekday - 1 - int(now.Weekday()) + 7) % 7
		next = next.AddDate(0, 0, days)
		if !next.After(now) {
			next = next.AddDate(0, 0, 7)
		}
		return next
	}
	if !next.After(now) {
		next = next.AddDate(0, 0, 1)
	}
	return next
}
