package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/peterbourgon/diskv/v3"
)

// Store is the diskv-backed KV plus the typed repositories layered on it.
type Store struct {
	d        *diskv.Diskv
	basePath string
}

// Open creates a Store rooted at the configured base path. A nil config
// loads the default one.
func Open(cfg Config) (*Store, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	return &Store{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		AdvancedTransform: keyToPathTransform,
		InverseTransform:  pathToKeyTransform,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// BasePath is the directory backing this store.
func (s *Store) BasePath() string {
	return s.basePath
}

func (s *Store) Records() *Records { return &Records{kv: s} }
func (s *Store) Snoozes() *Snoozes { return &Snoozes{kv: s} }
func (s *Store) Meta() *Meta       { return &Meta{kv: s} }

func (s *Store) Get(namespace, key string) ([]byte, error) {
	data, err := s.d.Read(join(namespace, key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("store: read %s/%s: %w", namespace, key, err)
	}
	return data, nil
}

func (s *Store) Set(namespace, key string, data []byte) error {
	if err := s.d.Write(join(namespace, key), data); err != nil {
		return fmt.Errorf("store: write %s/%s: %w", namespace, key, err)
	}
	return nil
}

func (s *Store) Delete(namespace, key string) error {
	if err := s.d.Erase(join(namespace, key)); err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("store: erase %s/%s: %w", namespace, key, err)
	}
	return nil
}

func (s *Store) Keys(ctx context.Context, namespace string) []string {
	prefix := namespace + "/"
	keys := make([]string, 0)
	for key := range s.d.Keys(ctx.Done()) {
		if strings.HasPrefix(key, prefix) {
			keys = append(keys, strings.TrimPrefix(key, prefix))
		}
	}
	return keys
}

// Keys are "namespace/key"; the namespace becomes the directory and the
// key the file name. Record keys are uuids, so "/" is a safe separator.
func join(namespace, key string) string {
	return namespace + "/" + key
}

func keyToPathTransform(s string) *diskv.PathKey {
	parts := strings.Split(s, "/")
	return &diskv.PathKey{
		Path:     parts[:len(parts)-1],
		FileName: parts[len(parts)-1],
	}
}

func pathToKeyTransform(pathKey *diskv.PathKey) string {
	return fmt.Sprintf("%s/%s", strings.Join(pathKey.Path, "/"), pathKey.FileName)
}
