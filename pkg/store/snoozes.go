package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"tableflip.dev/nudge/pkg/reminder"
)

// SnoozeEntry is diagnostic history for one snoozed reminder, not live
// schedule; the daily sweep prunes stale entries.
type SnoozeEntry struct {
	Key        string             `json:"key"`
	WakeUpTime reminder.Timestamp `json:"wakeUpTime"`
	Count      int                `json:"count"`
	CreatedAt  reminder.Timestamp `json:"createdAt"`
}

// Snoozes is the snooze-tracking table, kept in its own namespace.
type Snoozes struct {
	kv KV
}

func (s *Snoozes) Put(e SnoozeEntry) error {
	data, err := json.Marshal(e)
	if err != nil {
		return fmt.Errorf("store: encode snooze %s: %w", e.Key, err)
	}
	return s.kv.Set(NamespaceSnoozes, e.Key, data)
}

func (s *Snoozes) Delete(key string) error {
	return s.kv.Delete(NamespaceSnoozes, key)
}

func (s *Snoozes) List(ctx context.Context) []SnoozeEntry {
	all := make([]SnoozeEntry, 0)
	for _, key := range s.kv.Keys(ctx, NamespaceSnoozes) {
		data, err := s.kv.Get(NamespaceSnoozes, key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		var e SnoozeEntry
		if err := json.Unmarshal(data, &e); err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		all = append(all, e)
	}
	return all
}
