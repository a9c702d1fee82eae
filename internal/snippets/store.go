// Package snippets persists named text snippets behind a pluggable Store.
// The in-memory backend serves development; memcached acts as the shared
// blob backend when the service runs with more than one replica.
package snippets

import (
	"context"
	"sync"
)

// Store is the persistence contract for snippets. Get reports a miss as
// (_, false, nil); errors are reserved for backend failures.
type Store interface {
	Get(ctx context.Context, name string) (string, bool, error)
	Save(ctx context.Context, name, content string) error
}

// InMemoryStore implements Store with a mutex-guarded map. Contents live for
// the lifetime of the process.
type InMemoryStore struct {
	mu   sync.RWMutex
	data map[string]string
}

// NewInMemoryStore creates an empty in-memory store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{
		data: make(map[string]string),
	}
}

// Get returns the stored content for name, or false when absent.
func (s *InMemoryStore) Get(ctx context.Context, name string) (string, bool, error) {
	if ctx.Err() != nil {
		return "", false, ctx.Err()
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.data[name]
	return content, ok, nil
}

// Save stores content under name, replacing any previous value.
func (s *InMemoryStore) Save(ctx context.Context, name, content string) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[name] = content
	return nil
}
