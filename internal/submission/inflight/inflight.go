// Package inflight guards a form instance against overlapping submissions.
// A lock is held for the length of one pipeline run and expires on its own
// if the holder dies.
package inflight

import (
	"context"
	"sync"
	"time"

	"sunsetguide/pkg/platform/sentinel"
)

// InMemory is a single-process lock table.
type InMemory struct {
	mu    sync.Mutex
	locks map[string]time.Time
	clock func() time.Time
}

// NewInMemory creates an empty lock table.
func NewInMemory() *InMemory {
	return &InMemory{
		locks: make(map[string]time.Time),
		clock: time.Now,
	}
}

// Acquire takes the lock for key until ttl elapses. It returns
// sentinel.ErrConflict while another holder has it.
func (l *InMemory) Acquire(_ context.Context, key string, ttl time.Duration) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	now := l.clock()
	if exp, ok := l.locks[key]; ok && now.Before(exp) {
		return sentinel.ErrConflict
	}
	l.locks[key] = now.Add(ttl)
	return nil
}

// Release drops the lock for key.
func (l *InMemory) Release(_ context.Context, key string) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	delete(l.locks, key)
	return nil
}
