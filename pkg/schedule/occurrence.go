package schedule

import (
	"time"

	"tableflip.dev/nudge/pkg/reminder"
)

// FirstOccurrence computes the first fire instant for a schedule, strictly
// after now for the recurring kinds. The schedule must already be
// validated.
func FirstOccurrence(kind reminder.Kind, s reminder.Schedule, now time.Time) time.Time {
	switch kind {
	case reminder.Daily:
		next := time.Date(now.Year(), now.Month(), now.Day(), s.Hour, s.Minute, 0, 0, now.Location())
		if !next.After(now) {
			next = next.AddDate(0, 0, 1)
		}
		return next
	case reminder.Weekly:
		// Schedule weekdays are 1=Sunday .. 7=Saturday; time.Weekday is
		// 0=Sunday.
		days := (s.Weekday - 1 - int(now.Weekday()) + 7) % 7
		next := time.Date(now.Year(), now.Month(), now.Day(), s.Hour, s.Minute, 0, 0, now.Location())
		next = next.AddDate(0, 0, days)
		if !next.After(now) {
			next = next.AddDate(0, 0, 7)
		}
		return next
	case reminder.Interval:
		return now.Add(s.Every())
	default:
		return s.At.Time
	}
}

// NextOccurrence is FirstOccurrence relative to a later reference instant;
// recurring schedules advance past it.
func NextOccurrence(kind reminder.Kind, s reminder.Schedule, after time.Time) time.Time {
	return FirstOccurrence(kind, s, after)
}
