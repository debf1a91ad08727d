package inflight

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"sunsetguide/pkg/platform/circuit"
	"sunsetguide/pkg/platform/sentinel"
)

// Backend is a lock table.
type Backend interface {
	Acquire(ctx context.Context, key string, ttl time.Duration) error
	Release(ctx context.Context, key string) error
}

// Fallback uses primary while it is healthy and switches to fallback once
// the breaker opens. Each key is released on the backend that granted it.
type Fallback struct {
	primary  Backend
	fallback Backend
	breaker  *circuit.Breaker
	logger   *slog.Logger

	mu     sync.Mutex
	holder map[string]Backend
}

// NewFallback wraps primary with a breaker and a local fallback table.
func NewFallback(primary, fallback Backend, breaker *circuit.Breaker, logger *slog.Logger) *Fallback {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Fallback{
		primary:  primary,
		fallback: fallback,
		breaker:  breaker,
		logger:   logger,
		holder:   make(map[string]Backend),
	}
}

// Acquire tries primary first. A conflict counts as a healthy answer.
func (l *Fallback) Acquire(ctx context.Context, key string, ttl time.Duration) error {
	err := l.primary.Acquire(ctx, key, ttl)
	if err == nil || errors.Is(err, sentinel.ErrConflict) {
		if _, change := l.breaker.RecordSuccess(); change.Closed {
			l.logger.InfoContext(ctx, "in-flight lock backend recovered", "breaker", l.breaker.Name())
		}
		if err == nil {
			l.hold(key, l.primary)
		}
		return err
	}

	useFallback, change := l.breaker.RecordFailure()
	if change.Opened {
		l.logger.WarnContext(ctx, "in-flight lock backend unavailable, using local locks",
			"breaker", l.breaker.Name(),
			"error", err,
		)
	}
	if !useFallback {
		return err
	}
	if err := l.fallback.Acquire(ctx, key, ttl); err != nil {
		return err
	}
	l.hold(key, l.fallback)
	return nil
}

// Release drops key on whichever backend granted it.
func (l *Fallback) Release(ctx context.Context, key string) error {
	l.mu.Lock()
	backend, ok := l.holder[key]
	delete(l.holder, key)
	l.mu.Unlock()
	if !ok {
		return nil
	}
	return backend.Release(ctx, key)
}

func (l *Fallback) hold(key string, b Backend) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.holder[key] = b
}
