// Package file persists repository snapshots as a single codec-encoded file.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"coursework/internal/codec"
	"coursework/internal/repository"
)

// Store reads and writes the full entity list at path
type Store[T any] struct {
	path  string
	codec codec.Codec[T]
	perm  fs.FileMode
}

// Option configures a Store
type Option[T any] func(*Store[T])

// WithPerm sets the file mode used for written snapshots
func WithPerm[T any](perm fs.FileMode) Option[T] {
	return func(s *Store[T]) { s.perm = perm }
}

var _ repository.Snapshotter[int] = (*Store[int])(nil)

// New creates a store for path using c
func New[T any](path string, c codec.Codec[T], opts ...Option[T]) *Store[T] {
	s := &Store[T]{
		path:  path,
		codec: c,
		perm:  0o644,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewForPath creates a store whose codec is inferred from the file extension
func NewForPath[T any](path string, opts ...Option[T]) (*Store[T], error) {
	c, err := codec.ForPath[T](path)
	if err != nil {
		return nil, err
	}
	return New(path, c, opts...), nil
}

// Path returns the snapshot file path
func (s *Store[T]) Path() string {
	return s.path
}

// Load reads the snapshot. A missing file is an empty collection. Any other
// failure also yields an empty collection, together with the error, so the
// caller can log it and carry on.
func (s *Store[T]) Load(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return []T{}, err
	}

	f, err := os.Open(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return []T{}, fmt.Errorf("failed to open snapshot %s: %w", s.path, err)
	}
	defer f.Close()

	items, err := s.codec.Decode(f)
	if err != nil {
		return []T{}, fmt.Errorf("failed to decode snapshot %s: %w", s.path, err)
	}
	return items, nil
}

// Save overwrites the snapshot with items. The file is written to a
// temporary sibling and renamed into place.
func (s *Store[T]) Save(ctx context.Context, items []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if dir := filepath.Dir(s.path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create snapshot dir %s: %w", dir, err)
		}
	}

	tmp := s.path + ".tmp"
	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, s.perm)
	if err != nil {
		return fmt.Errorf("failed to create snapshot %s: %w", tmp, err)
	}

	if err := s.codec.Encode(items, f); err != nil {
		f.Close()
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to encode snapshot %s: %w", s.path, err)
	}
	if err := f.Close(); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to write snapshot %s: %w", tmp, err)
	}

	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace snapshot %s: %w", s.path, err)
	}
	return nil
}
