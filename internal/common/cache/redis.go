// Package cache provides a Redis-backed cache for documentation analyses.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/JimmyBlanquet/assistant-architect/internal/common/metrics"
)

// RedisCache wraps a Redis client for storing analysis results keyed by
// content hash.
type RedisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis connects to Redis and verifies the connection.
func NewRedis(addr string, ttl time.Duration) (*RedisCache, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis at %s: %w", addr, err)
	}

	return &RedisCache{client: client, ttl: ttl}, nil
}

// Close releases the underlying connection.
func (c *RedisCache) Close() error {
	return c.client.Close()
}

// Key derives a stable cache key from raw documentation content.
func Key(content string) string {
	sum := sha256.Sum256([]byte(content))
	return "analysis:" + hex.EncodeToString(sum[:])
}

// Get loads a cached value into dest. The bool reports whether the key was
// present.
func (c *RedisCache) Get(ctx context.Context, key string, dest interface{}) (bool, error) {
	raw, err := c.client.Get(ctx, key).Result()
	if err == redis.Nil {
		metrics.CacheHitsTotal.WithLabelValues("miss").Inc()
		return false, nil
	}
	if err != nil {
		metrics.CacheHitsTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("cache get failed for %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(raw), dest); err != nil {
		metrics.CacheHitsTotal.WithLabelValues("error").Inc()
		return false, fmt.Errorf("cache entry for %s is corrupt: %w", key, err)
	}

	metrics.CacheHitsTotal.WithLabelValues("hit").Inc()
	return true, nil
}

// Set stores value under key with the configured TTL.
func (c *RedisCache) Set(ctx context.Context, key string, value interface{}) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache value for %s is not serializable: %w", key, err)
	}
	if err := c.client.Set(ctx, key, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("cache set failed for %s: %w", key, err)
	}
	return nil
}

// Del removes a key.
func (c *RedisCache) Del(ctx context.Context, key string) error {
	return c.client.Del(ctx, key).Err()
}

// GetClient exposes the raw client for advanced operations.
func (c *RedisCache) GetClient() *redis.Client {
	return c.client
}
