package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func newTestRouter(t *testing.T, limiter *RateLimiter) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return router
}

func newTestLimiter(t *testing.T, maxAttempts int, window time.Duration) (*RateLimiter, *miniredis.Miniredis) {
	t.Helper()
	server := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: server.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRateLimiterWithConfig(client, maxAttempts, window), server
}

func doRequest(router *gin.Engine, ip string) *httptest.ResponseRecorder {
	recorder := httptest.NewRecorder()
	request := httptest.NewRequest(http.MethodPost, "/login", nil)
	request.RemoteAddr = ip + ":12345"
	router.ServeHTTP(recorder, request)
	return recorder
}

func TestRateLimiter_AllowsUpToLimit(t *testing.T) {
	limiter, _ := newTestLimiter(t, 3, time.Minute)
	router := newTestRouter(t, limiter)

	for i := 0; i < 3; i++ {
		if recorder := doRequest(router, "10.0.0.1"); recorder.Code != http.StatusOK {
			t.Fatalf("request %d: expected 200, got %d", i+1, recorder.Code)
		}
	}

	recorder := doRequest(router, "10.0.0.1")
	if recorder.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429 after limit, got %d", recorder.Code)
	}
}

func TestRateLimiter_KeysAreIndependentPerIP(t *testing.T) {
	limiter, _ := newTestLimiter(t, 1, time.Minute)
	router := newTestRouter(t, limiter)

	if recorder := doRequest(router, "10.0.0.1"); recorder.Code != http.StatusOK {
		t.Fatalf("first IP: expected 200, got %d", recorder.Code)
	}
	if recorder := doRequest(router, "10.0.0.1"); recorder.Code != http.StatusTooManyRequests {
		t.Fatalf("first IP second attempt: expected 429, got %d", recorder.Code)
	}
	if recorder := doRequest(router, "10.0.0.2"); recorder.Code != http.StatusOK {
		t.Fatalf("second IP: expected 200, got %d", recorder.Code)
	}
}

func TestRateLimiter_WindowExpiryResetsCounter(t *testing.T) {
	limiter, server := newTestLimiter(t, 1, time.Minute)
	router := newTestRouter(t, limiter)

	if recorder := doRequest(router, "10.0.0.1"); recorder.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", recorder.Code)
	}
	if recorder := doRequest(router, "10.0.0.1"); recorder.Code != http.StatusTooManyRequests {
		t.Fatalf("expected 429, got %d", recorder.Code)
	}

	server.FastForward(2 * time.Minute)

	if recorder := doRequest(router, "10.0.0.1"); recorder.Code != http.StatusOK {
		t.Fatalf("expected 200 after window expiry, got %d", recorder.Code)
	}
}

func TestRateLimiter_FailsOpenWhenRedisDown(t *testing.T) {
	limiter, server := newTestLimiter(t, 1, time.Minute)
	router := newTestRouter(t, limiter)
	server.Close()

	if recorder := doRequest(router, "10.0.0.1"); recorder.Code != http.StatusOK {
		t.Fatalf("expected 200 when redis is unavailable, got %d", recorder.Code)
	}
}
