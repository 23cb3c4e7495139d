package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type cachedAnalysis struct {
	Stack      []string `json:"stack"`
	Complexity string   `json:"complexity"`
}

func newTestCache(t *testing.T) *RedisCache {
	t.Helper()

	srv := miniredis.RunT(t)
	c, err := NewRedis(srv.Addr(), time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })

	return c
}

func TestRedisCacheRoundTrip(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	stored := cachedAnalysis{Stack: []string{"go", "redis"}, Complexity: "medium"}
	key := Key("# Project\nGo service with Redis")

	require.NoError(t, c.Set(ctx, key, stored))

	var loaded cachedAnalysis
	found, err := c.Get(ctx, key, &loaded)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, stored, loaded)
}

func TestRedisCacheMiss(t *testing.T) {
	c := newTestCache(t)

	var loaded cachedAnalysis
	found, err := c.Get(context.Background(), Key("never stored"), &loaded)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestRedisCacheDel(t *testing.T) {
	c := newTestCache(t)
	ctx := context.Background()

	key := Key("content")
	require.NoError(t, c.Set(ctx, key, cachedAnalysis{Complexity: "low"}))
	require.NoError(t, c.Del(ctx, key))

	var loaded cachedAnalysis
	found, err := c.Get(ctx, key, &loaded)
	require.NoError(t, err)
	assert.False(t, found)
}

func TestKeyIsStable(t *testing.T) {
	assert.Equal(t, Key("same content"), Key("same content"))
	assert.NotEqual(t, Key("same content"), Key("other content"))
}
