package ratelimit

import (
	"context"
	"fmt"
	"time"
)

const keyPrefix = "ratelimit:"

// Result is a single limiter decision.
type Result struct {
	Allowed    bool
	Remaining  int
	RetryAfter time.Duration
}

// Store counts requests per key within a fixed window.
type Store interface {
	// Incr bumps the counter for key and returns its value together with
	// the time left until the window resets.
	Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// Limiter enforces a fixed-window request budget per client key.
type Limiter struct {
	store  Store
	limit  int
	window time.Duration
}

// New creates a limiter allowing limit requests per window.
func New(store Store, limit int, window time.Duration) *Limiter {
	return &Limiter{store: store, limit: limit, window: window}
}

// Allow spends one request from the key's budget.
func (l *Limiter) Allow(ctx context.Context, key string) (Result, error) {
	count, ttl, err := l.store.Incr(ctx, keyPrefix+key, l.window)
	if err != nil {
		return Result{}, fmt.Errorf("count request: %w", err)
	}

	if count > int64(l.limit) {
		return Result{Allowed: false, Remaining: 0, RetryAfter: ttl}, nil
	}
	return Result{Allowed: true, Remaining: l.limit - int(count), RetryAfter: ttl}, nil
}
