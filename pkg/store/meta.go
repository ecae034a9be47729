package store

import (
	"errors"
	"time"
)

const (
	layoutISO       = "2006-01-02"
	keyLastRenewDay = "last-renew-day"
)

// Meta holds sweep bookkeeping, currently just the renewal debounce stamp.
type Meta struct {
	kv KV
}

// LastRenewDay returns the ISO date of the last renewal sweep, empty if
// none ran yet.
func (m *Meta) LastRenewDay() (string, error) {
	data, err := m.kv.Get(NamespaceMeta, keyLastRenewDay)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return "", nil
		}
		return "", err
	}
	return string(data), nil
}

func (m *Meta) SetLastRenewDay(day string) error {
	return m.kv.Set(NamespaceMeta, keyLastRenewDay, []byte(day))
}

// Day renders an instant as the ISO date used for debounce stamps.
func Day(t time.Time) string {
	return t.Format(layoutISO)
}
