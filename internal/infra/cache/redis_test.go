package cache

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/budget-ledger/backend/config"
)

func newMiniRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return mr, client
}

func TestNewRedisClient(t *testing.T) {
	mr := miniredis.RunT(t)

	client, err := NewRedisClient(&config.RedisConfig{URL: "redis://" + mr.Addr() + "/0"})
	require.NoError(t, err)
	defer client.Close()

	assert.True(t, HealthChecker(client)())
}

func TestNewRedisClient_InvalidURL(t *testing.T) {
	_, err := NewRedisClient(&config.RedisConfig{URL: "http://not-redis"})
	assert.ErrorContains(t, err, "invalid redis url")
}

func TestHealthChecker_ServerDown(t *testing.T) {
	mr, client := newMiniRedis(t)
	mr.Close()

	assert.False(t, HealthChecker(client)())
}

func TestRateLimitStore_Increment(t *testing.T) {
	mr, client := newMiniRedis(t)
	store := NewRateLimitStore(client)
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := store.Increment(ctx, "ratelimit:10.0.0.1", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	ttl := mr.TTL("ratelimit:10.0.0.1")
	assert.Equal(t, time.Minute, ttl)

	other, err := store.Increment(ctx, "ratelimit:10.0.0.2", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), other)
}

func TestRateLimitStore_WindowExpires(t *testing.T) {
	mr, client := newMiniRedis(t)
	store := NewRateLimitStore(client)
	ctx := context.Background()

	_, err := store.Increment(ctx, "ratelimit:ip", time.Minute)
	require.NoError(t, err)
	_, err = store.Increment(ctx, "ratelimit:ip", time.Minute)
	require.NoError(t, err)

	mr.FastForward(time.Minute + time.Second)

	got, err := store.Increment(ctx, "ratelimit:ip", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)
}
