package lifecycle

import (
	"context"
	"time"
)

// Backend action identifiers delivered by the host's notification action
// dispatch.
const (
	ActionSnooze5  = "snooze_5"
	ActionSnooze15 = "snooze_15"
	ActionSnooze60 = "snooze_60"
	ActionDismiss  = "dismiss"
	ActionDone     = "done"
	ActionCancel   = "cancel"
)

// HandleAction dispatches an inbound backend action to the matching
// lifecycle operation. Unknown actions are logged and ignored, never
// raised.
func (m *Manager) HandleAction(ctx context.Context, key, action string) error {
	switch action {
	case ActionSnooze5:
		return m.Snooze(ctx, key, 5*time.Minute)
	case ActionSnooze15:
		return m.Snooze(ctx, key, 15*time.Minute)
	case ActionSnooze60:
		return m.Snooze(ctx, key, time.Hour)
	case ActionDismiss, ActionDone:
		return m.Complete(ctx, key)
	case ActionCancel:
		return m.Cancel(ctx, key)
	default:
		m.Log.Warn().Str("key", key).Str("action", action).Msg("unknown backend action, ignoring")
		return nil
	}
}
