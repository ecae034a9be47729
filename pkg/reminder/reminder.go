package reminder

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Kind discriminates the schedule union on a record.
type Kind string

const (
	Once     Kind = "once"
	Daily    Kind = "daily"
	Weekly   Kind = "weekly"
	Interval Kind = "interval"
)

// State is the lifecycle state of a record. Completed and Cancelled are
// terminal.
type State string

const (
	Active    State = "active"
	Snoozed   State = "snoozed"
	Completed State = "completed"
	Cancelled State = "cancelled"
)

func (s State) Terminal() bool {
	return s == Completed || s == Cancelled
}

// MinIntervalSeconds is the floor applied to interval schedules and
// parsed trigger delays.
const MinIntervalSeconds = 60

// ErrInvalidRecurrence reports an out-of-range hour, minute, or weekday on
// a recurring schedule. It is raised at confirmation time, never clamped.
var ErrInvalidRecurrence = errors.New("invalid recurrence")

// Schedule carries the kind-specific firing parameters. Which fields are
// meaningful is decided by the record's Kind; Validate enforces the
// combination.
type Schedule struct {
	// At is the absolute fire instant for a one-shot reminder.
	At *Timestamp `json:"at,omitempty"`
	// Hour and Minute are the local wall-clock firing time for daily and
	// weekly reminders.
	Hour   int `json:"hour,omitempty"`
	Minute int `json:"minute,omitempty"`
	// Weekday is 1=Sunday .. 7=Saturday for weekly reminders.
	Weekday int `json:"weekday,omitempty"`
	// EverySeconds is the repeat period for interval reminders, floored to
	// MinIntervalSeconds.
	EverySeconds int64 `json:"everySeconds,omitempty"`
}

// Validate checks the schedule against the given kind.
func (s Schedule) Validate(kind Kind) error {
	switch kind {
	case Once:
		if s.At == nil || s.At.IsZero() {
			return fmt.Errorf("%w: one-time schedule requires an instant", ErrInvalidRecurrence)
		}
	case Daily:
		return s.validateClock()
	case Weekly:
		if s.Weekday < 1 || s.Weekday > 7 {
			return fmt.Errorf("%w: weekday %d out of range 1..7", ErrInvalidRecurrence, s.Weekday)
		}
		return s.validateClock()
	case Interval:
		if s.EverySeconds <= 0 {
			return fmt.Errorf("%w: interval must be positive", ErrInvalidRecurrence)
		}
	default:
		return fmt.Errorf("%w: unknown kind %q", ErrInvalidRecurrence, kind)
	}
	return nil
}

func (s Schedule) validateClock() error {
	if s.Hour < 0 || s.Hour > 23 {
		return fmt.Errorf("%w: hour %d out of range 0..23", ErrInvalidRecurrence, s.Hour)
	}
	if s.Minute < 0 || s.Minute > 59 {
		return fmt.Errorf("%w: minute %d out of range 0..59", ErrInvalidRecurrence, s.Minute)
	}
	return nil
}

// Every returns the interval period with the floor applied.
func (s Schedule) Every() time.Duration {
	secs := s.EverySeconds
	if secs < MinIntervalSeconds {
		secs = MinIntervalSeconds
	}
	return time.Duration(secs) * time.Second
}

// Record is the durable unit of scheduling truth. One record exists per
// user-visible reminder; its Key is assigned once and never reused.
type Record struct {
	Key      string   `json:"key"`
	Action   string   `json:"action"`
	Category Category `json:"category,omitempty"`
	Priority Priority `json:"priority,omitempty"`

	Kind     Kind     `json:"kind"`
	Schedule Schedule `json:"schedule"`

	State          State      `json:"state"`
	AlarmIDs       []string   `json:"alarmIds,omitempty"`
	SnoozeCount    int        `json:"snoozeCount,omitempty"`
	NextOccurrence *Timestamp `json:"nextOccurrence,omitempty"`

	CreatedAt Timestamp `json:"createdAt"`
	UpdatedAt Timestamp `json:"updatedAt"`
}

// New builds an unscheduled record with a fresh key.
func New(action string, kind Kind, schedule Schedule) *Record {
	now := time.Now()
	return &Record{
		Key:       uuid.NewString(),
		Action:    action,
		Category:  Personal,
		Priority:  Medium,
		Kind:      kind,
		Schedule:  schedule,
		CreatedAt: Timestamp{Time: now},
		UpdatedAt: Timestamp{Time: now},
	}
}

// Recurring reports whether the record needs occurrence renewal.
func (r *Record) Recurring() bool {
	return r.Kind == Daily || r.Kind == Weekly || r.Kind == Interval
}

// Touch bumps the updated timestamp.
func (r *Record) Touch() {
	r.UpdatedAt = Timestamp{Time: time.Now()}
}

func (r *Record) String() string {
	return fmt.Sprintf("%s [%s/%s] %s", r.Key, r.Kind, r.State, r.Action)
}
