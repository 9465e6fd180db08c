package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/rueidis"
)

// RedisConfig holds connection parameters for a Redis counter store.
type RedisConfig struct {
	Addrs    []string
	Password string
}

// RedisStore counts fixed windows in Redis so that replicas share one budget.
type RedisStore struct {
	client rueidis.Client
}

// NewRedisStore creates a Redis-backed counter store via rueidis.
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	if len(cfg.Addrs) == 0 {
		return nil, fmt.Errorf("addrs is required")
	}

	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  cfg.Addrs,
		Password:     cfg.Password,
		DisableCache: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &RedisStore{client: client}, nil
}

// Incr bumps the key and pins the window TTL on first touch. INCR, EXPIRE NX,
// and PTTL travel in a single DoMulti round-trip.
func (s *RedisStore) Incr(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	cmds := make([]rueidis.Completed, 0, 3)
	cmds = append(cmds, s.client.B().Incr().Key(key).Build())
	cmds = append(cmds, s.client.B().Expire().Key(key).Seconds(int64(window.Seconds())).Nx().Build())
	cmds = append(cmds, s.client.B().Pttl().Key(key).Build())

	results := s.client.DoMulti(ctx, cmds...)

	count, err := results[0].AsInt64()
	if err != nil {
		return 0, 0, fmt.Errorf("incr: %w", err)
	}
	if err := results[1].Error(); err != nil {
		return 0, 0, fmt.Errorf("expire: %w", err)
	}
	ms, err := results[2].AsInt64()
	if err != nil {
		return 0, 0, fmt.Errorf("pttl: %w", err)
	}

	// PTTL reports a negative value for keys without expiry.
	ttl := window
	if ms > 0 {
		ttl = time.Duration(ms) * time.Millisecond
	}
	return count, ttl, nil
}

// Ping checks connectivity.
func (s *RedisStore) Ping(ctx context.Context) error {
	cmd := s.client.B().Ping().Build()
	if err := s.client.Do(ctx, cmd).Error(); err != nil {
		return fmt.Errorf("ping: %w", err)
	}
	return nil
}

// Close shuts down the client.
func (s *RedisStore) Close() {
	s.client.Close()
}
