//go:build unit

package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"saba-booking/internal/handler/middleware"
	"saba-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestRateLimiter(t *testing.T) {
	gin.SetMode(gin.TestMode)
	limiter := middleware.NewRateLimiter(config.RateLimitConfig{PerMinute: 1, Burst: 2})
	r := gin.New()
	r.Use(limiter.Middleware())
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	call := func(ip string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, "/ping", nil)
		req.RemoteAddr = ip + ":40000"
		rec := httptest.NewRecorder()
		r.ServeHTTP(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusNoContent, call("192.0.2.1").Code)
	assert.Equal(t, http.StatusNoContent, call("192.0.2.1").Code)

	limited := call("192.0.2.1")
	assert.Equal(t, http.StatusTooManyRequests, limited.Code)
	assert.Equal(t, "60", limited.Header().Get("Retry-After"))

	// a rejected request does not consume the next token
	assert.Equal(t, http.StatusTooManyRequests, call("192.0.2.1").Code)
	assert.Equal(t, "60", call("192.0.2.1").Header().Get("Retry-After"))

	assert.Equal(t, http.StatusNoContent, call("198.51.100.7").Code, "other clients keep their own bucket")
}
