package store

import (
	"context"
	"errors"
)

// Namespaces used by the reminder core. Each maps to its own directory
// under the store base path.
const (
	NamespaceRecords = "records"
	NamespaceSnoozes = "snoozes"
	NamespaceMeta    = "meta"
)

// ErrNotFound is returned by Get for a missing key.
var ErrNotFound = errors.New("store: not found")

// KV is the durable key-value contract the reminder core persists through.
type KV interface {
	Get(namespace, key string) ([]byte, error)
	Set(namespace, key string, data []byte) error
	Delete(namespace, key string) error
	Keys(ctx context.Context, namespace string) []string
}
