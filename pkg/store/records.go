package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"sort"

	"tableflip.dev/nudge/pkg/reminder"
)

// Records is the durable reminder-record table. The lifecycle manager owns
// all mutation of it.
type Records struct {
	kv KV
}

func (r *Records) Get(key string) (*reminder.Record, bool, error) {
	data, err := r.kv.Get(NamespaceRecords, key)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	rec := &reminder.Record{}
	if err := json.Unmarshal(data, rec); err != nil {
		return nil, false, fmt.Errorf("store: decode record %s: %w", key, err)
	}
	return rec, true, nil
}

func (r *Records) Save(rec *reminder.Record) error {
	if rec.Key == "" {
		return errors.New("store: record key required")
	}
	data, err := json.Marshal(rec)
	if err != nil {
		return fmt.Errorf("store: encode record %s: %w", rec.Key, err)
	}
	return r.kv.Set(NamespaceRecords, rec.Key, data)
}

func (r *Records) Delete(key string) error {
	return r.kv.Delete(NamespaceRecords, key)
}

// List returns every record sorted by creation time, oldest first.
func (r *Records) List(ctx context.Context) []*reminder.Record {
	all := make([]*reminder.Record, 0)
	for _, key := range r.kv.Keys(ctx, NamespaceRecords) {
		rec, ok, err := r.Get(key)
		if err != nil {
			fmt.Fprintf(os.Stderr, "%s: %s\n", key, err)
			continue
		}
		if ok {
			all = append(all, rec)
		}
	}
	sortRecords(all)
	return all
}

func sortRecords(records []*reminder.Record) {
	sort.SliceStable(records, func(i, j int) bool {
		lt := records[i].CreatedAt.Time
		rt := records[j].CreatedAt.Time
		if lt.Equal(rt) {
			return records[i].Key < records[j].Key
		}
		return lt.Before(rt)
	})
}
