// Package alarm defines the platform alarm backend contract and an
// in-process software-timer implementation of it.
package alarm

import (
	"context"
	"time"
)

// TriggerKind discriminates the trigger union.
type TriggerKind string

const (
	KindAbsolute TriggerKind = "absolute"
	KindInterval TriggerKind = "interval"
	KindCalendar TriggerKind = "calendar"
)

// Clock is the wall-clock part of a calendar trigger. Weekday is
// 1=Sunday .. 7=Saturday, zero when the trigger repeats daily.
type Clock struct {
	Hour    int
	Minute  int
	Weekday int
}

// Trigger describes when an alarm should fire. Exactly one of At, Every,
// or Calendar is set; Kind reports which.
type Trigger struct {
	At       *time.Time
	Every    time.Duration
	Calendar *Clock
	Repeats  bool
}

func Absolute(at time.Time) Trigger {
	return Trigger{At: &at}
}

func Interval(every time.Duration, repeats bool) Trigger {
	return Trigger{Every: every, Repeats: repeats}
}

func Calendar(c Clock, repeats bool) Trigger {
	return Trigger{Calendar: &c, Repeats: repeats}
}

func (t Trigger) Kind() TriggerKind {
	switch {
	case t.At != nil:
		return KindAbsolute
	case t.Calendar != nil:
		return KindCalendar
	default:
		return KindInterval
	}
}

// Payload travels with the alarm and comes back on the firing callback.
type Payload struct {
	Key   string `json:"key"`
	Title string `json:"title,omitempty"`
}

// Registration pairs a live alarm identifier with its trigger.
type Registration struct {
	ID      string
	Trigger Trigger
}

// Backend is the platform alarm service the scheduling engine drives.
// Cancel of an unknown identifier is a no-op, never an error.
type Backend interface {
	Register(ctx context.Context, t Trigger, p Payload) (string, error)
	Cancel(ctx context.Context, id string) error
	List(ctx context.Context) ([]Registration, error)
}
