// Package memory keeps documents in process memory.
package memory

import (
	"context"
	"errors"
	"sync"

	domainErrors "github.com/dzinstall/storefront/internal/domain/errors"
	"github.com/dzinstall/storefront/internal/domain/repository"
)

// Storage is a map backed repository.DocumentStore.
type Storage struct {
	mu   sync.RWMutex
	docs map[string][]byte
}

var _ repository.DocumentStore = (*Storage)(nil)

var errReadOnly = errors.New("memory storage: write inside read-only view")

// New creates empty storage.
func New() *Storage {
	return &Storage{docs: make(map[string][]byte)}
}

type tx struct {
	base     map[string][]byte
	writes   map[string][]byte
	deletes  map[string]bool
	readOnly bool
}

func (t *tx) Read(_ context.Context, key string) ([]byte, error) {
	if t.deletes[key] {
		return nil, domainErrors.ErrNotFound
	}
	if v, ok := t.writes[key]; ok {
		return clone(v), nil
	}
	v, ok := t.base[key]
	if !ok {
		return nil, domainErrors.ErrNotFound
	}
	return clone(v), nil
}

func (t *tx) Write(_ context.Context, key string, value []byte) error {
	if t.readOnly {
		return errReadOnly
	}
	delete(t.deletes, key)
	t.writes[key] = clone(value)
	return nil
}

func (t *tx) Delete(_ context.Context, key string) error {
	if t.readOnly {
		return errReadOnly
	}
	delete(t.writes, key)
	t.deletes[key] = true
	return nil
}

// View runs fn under a shared lock.
func (s *Storage) View(ctx context.Context, fn func(repository.DocumentTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return fn(&tx{base: s.docs, readOnly: true})
}

// Update stages writes and applies them only when fn succeeds.
func (s *Storage) Update(ctx context.Context, fn func(repository.DocumentTx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	t := &tx{base: s.docs, writes: map[string][]byte{}, deletes: map[string]bool{}}
	if err := fn(t); err != nil {
		return err
	}
	for k := range t.deletes {
		delete(s.docs, k)
	}
	for k, v := range t.writes {
		s.docs[k] = v
	}
	return nil
}

// HealthCheck always succeeds.
func (s *Storage) HealthCheck(context.Context) error { return nil }

// Close is a no-op.
func (s *Storage) Close() {}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
