package parse

import (
	"strings"
	"testing"
	"time"

	"tableflip.dev/nudge/pkg/reminder"
)

func hasWarning(warnings []string, substr string) bool {
	for _, w := range warnings {
		if strings.Contains(w, substr) {
			return true
		}
	}
	return false
}

func TestValidateCleanDraft(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	d := &reminder.Draft{
		ActionText:     "call mom",
		TriggerSeconds: 1800,
		Confidence:     80,
	}
	if warnings := Validate(d, now); len(warnings) != 0 {
		t.Errorf("expected no warnings, got %v", warnings)
	}
}

func TestValidateWarnings(t *testing.T) {
	now := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		draft  reminder.Draft
		substr string
	}{
		{
			name:   "low confidence",
			draft:  reminder.Draft{ActionText: "call mom", TriggerSeconds: 1800, Confidence: 30},
			substr: "low confidence",
		},
		{
			name: "past instant",
			draft: reminder.Draft{
				ActionText:     "call mom",
				TriggerSeconds: 1800,
				Confidence:     80,
				TriggerInstant: reminder.At(now.Add(-time.Hour)),
			},
			substr: "in the past",
		},
		{
			name:   "far future",
			draft:  reminder.Draft{ActionText: "call mom", TriggerSeconds: 2 * yearSeconds, Confidence: 80},
			substr: "far in the future",
		},
		{
			name:   "very soon",
			draft:  reminder.Draft{ActionText: "call mom", TriggerSeconds: 10, Confidence: 80},
			substr: "very soon",
		},
		{
			name:   "short action",
			draft:  reminder.Draft{ActionText: "ab", TriggerSeconds: 1800, Confidence: 80},
			substr: "very short",
		},
		{
			name: "recurrence hour out of range",
			draft: reminder.Draft{
				ActionText:     "exercise",
				TriggerSeconds: 1800,
				Confidence:     80,
				Recurrence:     &reminder.Recurrence{Kind: reminder.Daily, Hour: 25},
			},
			substr: "hour 25 out of range",
		},
		{
			name: "recurrence minute out of range",
			draft: reminder.Draft{
				ActionText:     "exercise",
				TriggerSeconds: 1800,
				Confidence:     80,
				Recurrence:     &reminder.Recurrence{Kind: reminder.Daily, Hour: 9, Minute: 75},
			},
			substr: "minute 75 out of range",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			warnings := Validate(&tc.draft, now)
			if !hasWarning(warnings, tc.substr) {
				t.Errorf("expected warning containing %q, got %v", tc.substr, warnings)
			}
		})
	}
}
