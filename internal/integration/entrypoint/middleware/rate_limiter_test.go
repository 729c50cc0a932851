package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainerror "github.com/budget-ledger/backend/internal/domain/error"
	"github.com/budget-ledger/backend/internal/infra/cache"
	"github.com/budget-ledger/backend/internal/integration/entrypoint/dto"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func limitedEngine(rl *RateLimiter) *gin.Engine {
	r := gin.New()
	r.Use(RequestID())
	r.POST("/write", rl.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusCreated)
	})
	return r
}

func post(r http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/write", nil)
	if remoteAddr != "" {
		req.RemoteAddr = remoteAddr
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type brokenStore struct{}

func (brokenStore) Increment(context.Context, string, time.Duration) (int64, error) {
	return 0, errors.New("connection refused")
}

func TestRateLimiter_MemoryStore(t *testing.T) {
	rl := NewRateLimiterWithConfig(NewMemoryRateLimitStore(), 2, time.Minute)
	r := limitedEngine(rl)

	first := post(r, "")
	assert.Equal(t, http.StatusCreated, first.Code)
	assert.Equal(t, "2", first.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", first.Header().Get("X-RateLimit-Remaining"))

	assert.Equal(t, http.StatusCreated, post(r, "").Code)

	blocked := post(r, "")
	assert.Equal(t, http.StatusTooManyRequests, blocked.Code)
	assert.Equal(t, "0", blocked.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", blocked.Header().Get("Retry-After"))

	var body dto.ErrorResponse
	require.NoError(t, json.Unmarshal(blocked.Body.Bytes(), &body))
	assert.Equal(t, domainerror.ErrCodeRateLimited, body.Code)

	// Another client has its own window.
	assert.Equal(t, http.StatusCreated, post(r, "198.51.100.7:4000").Code)
}

func TestRateLimiter_RedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	rl := NewRateLimiterWithConfig(cache.NewRateLimitStore(client), 1, 30*time.Second)
	r := limitedEngine(rl)

	assert.Equal(t, http.StatusCreated, post(r, "").Code)
	assert.Equal(t, http.StatusTooManyRequests, post(r, "").Code)

	mr.FastForward(31 * time.Second)
	assert.Equal(t, http.StatusCreated, post(r, "").Code)
}

func TestRateLimiter_FailsOpen(t *testing.T) {
	r := limitedEngine(NewRateLimiterWithConfig(brokenStore{}, 1, time.Minute))

	for i := 0; i < 3; i++ {
		w := post(r, "")
		assert.Equal(t, http.StatusCreated, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	r := limitedEngine(NewRateLimiterWithConfig(NewMemoryRateLimitStore(), 0, time.Minute))

	for i := 0; i < 5; i++ {
		assert.Equal(t, http.StatusCreated, post(r, "").Code)
	}
}

func TestMemoryRateLimitStore_WindowExpiry(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryRateLimitStore()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	for want := int64(1); want <= 3; want++ {
		got, err := store.Increment(ctx, "k", time.Minute)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	now = now.Add(61 * time.Second)
	got, err := store.Increment(ctx, "k", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), got)

	_, err = store.Increment(ctx, "other", time.Second)
	require.NoError(t, err)
	now = now.Add(2 * time.Second)
	store.Cleanup()
	assert.NotContains(t, store.entries, "other")
	assert.Contains(t, store.entries, "k")

	store.Reset()
	assert.Empty(t, store.entries)
}

func TestMemoryRateLimitStore_IncrementEvictsExpiredClients(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
	store := NewMemoryRateLimitStore()
	store.now = func() time.Time { return now }
	ctx := context.Background()

	for i := 0; i < 100; i++ {
		_, err := store.Increment(ctx, fmt.Sprintf("ratelimit:10.0.0.%d", i), time.Minute)
		require.NoError(t, err)
	}
	assert.Len(t, store.entries, 100)

	// Within the window nothing is dropped.
	now = now.Add(30 * time.Second)
	_, err := store.Increment(ctx, "ratelimit:10.0.1.1", time.Minute)
	require.NoError(t, err)
	assert.Len(t, store.entries, 101)

	now = now.Add(31 * time.Second)
	_, err = store.Increment(ctx, "ratelimit:10.0.1.2", time.Minute)
	require.NoError(t, err)
	assert.Len(t, store.entries, 2)
	assert.Contains(t, store.entries, "ratelimit:10.0.1.1")
	assert.Contains(t, store.entries, "ratelimit:10.0.1.2")
}
