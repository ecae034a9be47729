package parse

import (
	"fmt"
	"time"

	"tableflip.dev/nudge/pkg/reminder"
)

const yearSeconds = 365 * 24 * 60 * 60

// Validate runs the non-fatal review pass over a draft. Warnings annotate
// the confirmation step; they never block it.
func Validate(d *reminder.Draft, now time.Time) []string {
	var warnings []string

	if d.Confidence < 50 {
		warnings = append(warnings, fmt.Sprintf("low confidence (%d); review before confirming", d.Confidence))
	}
	// The resolver rolls past instants forward, so this should be
	// unreachable; checked anyway.
	if d.TriggerInstant != nil && !d.TriggerInstant.IsZero() && !d.TriggerInstant.After(now) {
		warnings = append(warnings, "resolved time is in the past")
	}
	if d.TriggerSeconds > yearSeconds {
		warnings = append(warnings, "trigger is very far in the future (over a year away)")
	}
	if d.TriggerSeconds < reminder.MinIntervalSeconds {
		warnings = append(warnings, "trigger is very soon (under a minute away)")
	}
	if len(d.ActionText) < 3 {
		warnings = append(warnings, "action text is very short")
	}
	if rec := d.Recurrence; rec != nil {
		if rec.Hour < 0 || rec.Hour > 23 {
			warnings = append(warnings, fmt.Sprintf("recurrence hour %d out of range 0..23", rec.Hour))
		}
		if rec.Minute < 0 || rec.Minute > 59 {
			warnings = append(warnings, fmt.Sprintf("recurrence minute %d out of range 0..59", rec.Minute))
		}
	}

	return warnings
}
