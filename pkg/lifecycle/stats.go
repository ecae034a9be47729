package lifecycle

import (
	"context"

	"tableflip.dev/nudge/pkg/reminder"
)

// Stats aggregates the current schedule: live record counts, the backend's
// own view of registered alarms, and the active breakdown by kind.
type Stats struct {
	Active     int
	Snoozed    int
	LiveAlarms int
	ByKind     map[reminder.Kind]int
}

func (m *Manager) Stats(ctx context.Context) (Stats, error) {
	st := Stats{ByKind: make(map[reminder.Kind]int)}

	for _, rec := range m.Records.List(ctx) {
		switch rec.State {
		case reminder.Active:
			st.Active++
			st.ByKind[rec.Kind]++
		case reminder.Snoozed:
			st.Snoozed++
		}
	}

	regs, err := m.Backend.List(ctx)
	if err != nil {
		return Stats{}, err
	}
	st.LiveAlarms = len(regs)

	return st, nil
}
