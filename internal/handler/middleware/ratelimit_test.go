//go:build unit

package middleware_test

import (
	"net/http"
	"testing"

	"homeclean-booking/internal/handler/middleware"
	"homeclean-booking/internal/pkg/config"
	"homeclean-booking/tests/common/httptest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(limiter *middleware.RateLimiter, userID *uuid.UUID) *gin.Engine {
		r := gin.New()
		r.POST("/quotes", func(c *gin.Context) {
			if userID != nil {
				c.Set("user_id", *userID)
			}
			c.Next()
		}, limiter.Middleware(), func(c *gin.Context) { c.Status(http.StatusOK) })
		return r
	}

	t.Run("burst then 429", func(t *testing.T) {
		limiter := middleware.NewRateLimiter(config.RateLimitConfig{RPS: 0.001, Burst: 2})
		router := newRouter(limiter, nil)

		for range 2 {
			rec := httptest.PerformRequest(t, router, http.MethodPost, "/quotes", nil, "")
			assert.Equal(t, http.StatusOK, rec.Code)
		}
		rec := httptest.PerformRequest(t, router, http.MethodPost, "/quotes", nil, "")
		httptest.AssertErrorResponse(t, rec, http.StatusTooManyRequests, "Rate limit exceeded")
		httptest.AssertHeaders(t, rec, map[string]string{"Retry-After": "1000"})
	})

	t.Run("users are limited independently", func(t *testing.T) {
		limiter := middleware.NewRateLimiter(config.RateLimitConfig{RPS: 0.001, Burst: 1})
		alice, bob := uuid.New(), uuid.New()

		assert.Equal(t, http.StatusOK, httptest.PerformRequest(t, newRouter(limiter, &alice), http.MethodPost, "/quotes", nil, "").Code)
		rec := httptest.PerformRequest(t, newRouter(limiter, &alice), http.MethodPost, "/quotes", nil, "")
		assert.Equal(t, http.StatusTooManyRequests, rec.Code)
		httptest.AssertHeaders(t, rec, map[string]string{"Retry-After": "1000"})
		assert.Equal(t, http.StatusOK, httptest.PerformRequest(t, newRouter(limiter, &bob), http.MethodPost, "/quotes", nil, "").Code)
	})

	t.Run("prune keeps recent callers", func(t *testing.T) {
		limiter := middleware.NewRateLimiter(config.RateLimitConfig{RPS: 1, Burst: 1})
		httptest.PerformRequest(t, newRouter(limiter, nil), http.MethodPost, "/quotes", nil, "")

		assert.Equal(t, 0, limiter.Prune())
	})
}
