package middleware

import (
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limitedHandler(rdb *redis.Client, limit int, window, block time.Duration) (http.Handler, *int) {
	hits := 0
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		w.WriteHeader(http.StatusOK)
	})
	return RateLimiter(rdb, limit, window, block, "test")(next), &hits
}

func doGet(h http.Handler, remoteAddr string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.RemoteAddr = remoteAddr
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_UnderLimit(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	h, hits := limitedHandler(rdb, 3, time.Minute, time.Minute)

	for i := 0; i < 3; i++ {
		rec := doGet(h, "10.0.0.1:1234")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "3", rec.Header().Get("X-RateLimit-Limit"))
	}
	assert.Equal(t, 3, *hits)
}

func TestRateLimiter_OverLimitBlocks(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	h, hits := limitedHandler(rdb, 2, time.Minute, 10*time.Minute)

	for i := 0; i < 2; i++ {
		rec := doGet(h, "10.0.0.1:1234")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	// Third request trips the limit and sets the block key.
	rec := doGet(h, "10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "Too many requests")

	// Subsequent requests are rejected by the block key itself.
	rec = doGet(h, "10.0.0.1:1234")
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Retry-After"))

	assert.Equal(t, 2, *hits)
}

func TestRateLimiter_KeysByClient(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})

	h, hits := limitedHandler(rdb, 1, time.Minute, time.Minute)

	require.Equal(t, http.StatusOK, doGet(h, "10.0.0.1:1234").Code)
	assert.Equal(t, http.StatusTooManyRequests, doGet(h, "10.0.0.1:1234").Code)

	// A different client is not affected by the first one's budget.
	assert.Equal(t, http.StatusOK, doGet(h, "10.0.0.2:1234").Code)
	assert.Equal(t, 2, *hits)
}

// The limiter must never take auth down with it: when redis is unreachable,
// traffic passes through.
func TestRateLimiter_FailsOpenWithoutRedis(t *testing.T) {
	// Grab a free port and close it again so nothing is listening there.
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := lis.Addr().String()
	require.NoError(t, lis.Close())

	rdb := redis.NewClient(&redis.Options{Addr: addr})

	h, hits := limitedHandler(rdb, 1, time.Minute, time.Minute)

	for i := 0; i < 5; i++ {
		rec := doGet(h, "10.0.0.1:1234")
		assert.Equal(t, http.StatusOK, rec.Code)
	}
	assert.Equal(t, 5, *hits)
}
