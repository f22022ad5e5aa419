package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	redisStore "uma-vasp-backend/internal/adapter/storage/redis"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
)

func rateLimitedRouter(t *testing.T, rule RateLimitRule) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	store := redisStore.NewRateLimitStore(client)
	r := gin.New()
	r.GET("/limited", RateLimiter(store, "send", rule, zerolog.Nop()), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return r, mr
}

func TestRateLimiter_AllowsUnderLimit(t *testing.T) {
	r, _ := rateLimitedRouter(t, RateLimitRule{Limit: 2, Window: time.Minute})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get("X-RateLimit-Limit"))
	assert.Equal(t, "1", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("X-RateLimit-Reset"))
}

func TestRateLimiter_BlocksOverLimit(t *testing.T) {
	r, _ := rateLimitedRouter(t, RateLimitRule{Limit: 2, Window: time.Minute})

	for i := 0; i < 2; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))

	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.NotEmpty(t, w.Header().Get("Retry-After"))
}

func TestRateLimiter_RecoversAfterWindow(t *testing.T) {
	r, mr := rateLimitedRouter(t, RateLimitRule{Limit: 1, Window: time.Minute})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)

	mr.FastForward(61 * time.Second)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRateLimiter_DegradedModeAllowsOnStoreError(t *testing.T) {
	r, mr := rateLimitedRouter(t, RateLimitRule{Limit: 1, Window: time.Minute})

	mr.Close()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/limited", nil))

	assert.Equal(t, http.StatusOK, w.Code)
}
