package ratelimit

import "github.com/redis/rueidis"

// NewRedisStoreForTest creates a RedisStore with the provided rueidis client (test-only).
func NewRedisStoreForTest(c rueidis.Client) *RedisStore {
	return &RedisStore{client: c}
}
