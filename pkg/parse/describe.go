package parse

import (
	"fmt"
	"time"

	"tableflip.dev/nudge/pkg/timeutil"
)

// Describe renders a fire instant the way a person would say it:
// "in 12 minutes", "today at 3:30 PM", "tomorrow at 7:00 PM",
// "Friday at 9:00 AM", or "on Mar 14 at 9:00 AM".
func Describe(now, at time.Time) string {
	delta := at.Sub(now)
	if delta < time.Hour {
		mins := int(delta.Round(time.Minute) / time.Minute)
		if mins < 1 {
			mins = 1
		}
		if mins == 1 {
			return "in 1 minute"
		}
		return fmt.Sprintf("in %d minutes", mins)
	}

	clock := timeutil.FormatClock(at)
	switch {
	case sameDay(at, now):
		return "today at " + clock
	case sameDay(at, now.AddDate(0, 0, 1)):
		return "tomorrow at " + clock
	case delta < 7*24*time.Hour:
		return fmt.Sprintf("%s at %s", at.Weekday(), clock)
	default:
		return fmt.Sprintf("on %s at %s", at.Format("Jan 2"), clock)
	}
}
