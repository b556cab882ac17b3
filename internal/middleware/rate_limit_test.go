package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRateLimitRouter(rate int, window time.Duration) (*gin.Engine, *ShardedRateLimiter) {
	limiter := NewRateLimiter(rate, window)
	router := gin.New()
	router.Use(RequestID(), limiter.RateLimit())
	router.GET("/", func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router, limiter
}

// TestRateLimit_AllowsWithinLimit tests requests under the limit pass.
func TestRateLimit_AllowsWithinLimit(t *testing.T) {
	router, limiter := setupRateLimitRouter(3, time.Minute)
	defer limiter.Stop()

	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "3", w.Header().Get("X-RateLimit-Limit"))
	}
}

// TestRateLimit_BlocksOverLimit tests that the limit is enforced.
func TestRateLimit_BlocksOverLimit(t *testing.T) {
	router, limiter := setupRateLimitRouter(2, time.Minute)
	defer limiter.Stop()

	statuses := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		statuses = append(statuses, w.Code)

		if w.Code == http.StatusTooManyRequests {
			assert.NotEmpty(t, w.Header().Get("Retry-After"))
			assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
		}
	}

	assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, statuses)
}

// TestRateLimit_WindowReset tests that tokens refill after the window.
func TestRateLimit_WindowReset(t *testing.T) {
	router, limiter := setupRateLimitRouter(1, 50*time.Millisecond)
	defer limiter.Stop()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	require.Equal(t, http.StatusTooManyRequests, w.Code)

	time.Sleep(60 * time.Millisecond)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

// TestShardedRateLimiter_Stats tests visitor accounting across shards.
func TestShardedRateLimiter_Stats(t *testing.T) {
	limiter := NewShardedRateLimiter(10, time.Minute, 4)
	defer limiter.Stop()

	limiter.checkRateLimit("10.0.0.1")
	limiter.checkRateLimit("10.0.0.2")
	limiter.checkRateLimit("10.0.0.1")

	total, perShard := limiter.Stats()
	assert.Equal(t, 2, total)
	assert.Len(t, perShard, 4)
}

// TestShardedRateLimiter_CleanupExpired tests removal of stale visitors.
func TestShardedRateLimiter_CleanupExpired(t *testing.T) {
	limiter := NewShardedRateLimiter(10, 10*time.Millisecond, 4)
	defer limiter.Stop()

	limiter.checkRateLimit("10.0.0.1")
	total, _ := limiter.Stats()
	require.Equal(t, 1, total)

	time.Sleep(25 * time.Millisecond)
	limiter.cleanupExpired()

	total, _ = limiter.Stats()
	assert.Equal(t, 0, total)
}
