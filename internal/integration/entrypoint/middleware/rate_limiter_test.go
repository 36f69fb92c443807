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

func limiterRouter(t *testing.T, maxAttempts int) (*gin.Engine, *miniredis.Miniredis) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	limiter := NewRateLimiterWithConfig(client, maxAttempts, time.Minute)

	engine := gin.New()
	engine.POST("/login", limiter.Middleware(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})
	return engine, mr
}

func postLogin(engine *gin.Engine) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/login", nil)
	req.RemoteAddr = "192.0.2.1:1234"
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)
	return rec
}

func TestRateLimiter_Middleware(t *testing.T) {
	t.Run("allows up to the limit then rejects", func(t *testing.T) {
		engine, _ := limiterRouter(t, 3)

		for i := 0; i < 3; i++ {
			if rec := postLogin(engine); rec.Code != http.StatusOK {
				t.Fatalf("expected attempt %d to pass, got %d", i+1, rec.Code)
			}
		}

		if rec := postLogin(engine); rec.Code != http.StatusTooManyRequests {
			t.Errorf("expected 429 past the limit, got %d", rec.Code)
		}
	})

	t.Run("window expiry resets the counter", func(t *testing.T) {
		engine, mr := limiterRouter(t, 1)

		if rec := postLogin(engine); rec.Code != http.StatusOK {
			t.Fatalf("expected first attempt to pass, got %d", rec.Code)
		}
		if rec := postLogin(engine); rec.Code != http.StatusTooManyRequests {
			t.Fatalf("expected 429, got %d", rec.Code)
		}

		mr.FastForward(2 * time.Minute)

		if rec := postLogin(engine); rec.Code != http.StatusOK {
			t.Errorf("expected a fresh window to pass, got %d", rec.Code)
		}
	})

	t.Run("redis outage fails open", func(t *testing.T) {
		engine, mr := limiterRouter(t, 1)
		mr.Close()

		for i := 0; i < 5; i++ {
			if rec := postLogin(engine); rec.Code != http.StatusOK {
				t.Fatalf("expected fail-open pass-through, got %d", rec.Code)
			}
		}
	})

	t.Run("test environment skips limiting", func(t *testing.T) {
		t.Setenv("ENV", "test")
		engine, _ := limiterRouter(t, 1)

		for i := 0; i < 5; i++ {
			if rec := postLogin(engine); rec.Code != http.StatusOK {
				t.Fatalf("expected test mode pass-through, got %d", rec.Code)
			}
		}
	})
}
