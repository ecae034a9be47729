package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// EventType describes the nature of a storage change notification.
type EventType int

const (
	// EventRecordChanged indicates one reminder record was written or
	// removed.
	EventRecordChanged EventType = iota

	// EventStoreInvalidated signals that the change could not be mapped to
	// a single record and watchers should refresh their full view.
	EventStoreInvalidated
)

// Event is emitted by Watch when underlying storage changes.
type Event struct {
	Type EventType
	Key  string
}

// Watch streams record-change events until ctx is cancelled, so a host UI
// can refresh without polling. Callers should drain the returned channel;
// events are dropped, not queued, when the consumer lags. The channel is
// closed once ctx is done or the watcher fails.
func (s *Store) Watch(ctx context.Context) (<-chan Event, error) {
	recordsDir := filepath.Join(s.basePath, NamespaceRecords)
	if err := os.MkdirAll(recordsDir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure records path: %w", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("store: create watcher: %w", err)
	}
	if err := watcher.Add(recordsDir); err != nil {
		if cerr := watcher.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", cerr)
		}
		return nil, fmt.Errorf("store: watch %s: %w", recordsDir, err)
	}

	events := make(chan Event, 64)

	go func() {
		defer close(events)
		defer func() {
			if err := watcher.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "store: watcher close: %v\n", err)
			}
		}()

		send := func(ev Event) {
			select {
			case events <- ev:
			default:
				// Drop when the consumer is not ready; a subsequent refresh
				// picks the change up and the watcher never stalls.
			}
		}

		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
				send(Event{Type: EventStoreInvalidated})
			case evt, ok := <-watcher.Events:
				if !ok {
					return
				}
				key := recordKeyForPath(recordsDir, evt.Name)
				if key == "" {
					send(Event{Type: EventStoreInvalidated})
					continue
				}
				send(Event{Type: EventRecordChanged, Key: key})
			}
		}
	}()

	return events, nil
}

// recordKeyForPath derives the record key from a diskv file path, empty
// when the path is not a record file.
func recordKeyForPath(recordsDir, path string) string {
	rel, err := filepath.Rel(recordsDir, path)
	if err != nil || rel == "." {
		return ""
	}
	if strings.Contains(rel, string(os.PathSeparator)) {
		return ""
	}
	if strings.HasPrefix(rel, ".") {
		return ""
	}
	return rel
}
