package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"golang.org/x/time/rate"
)

func newLimitedRouter(r rate.Limit, burst int) *gin.Engine {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.POST("/chat", RateLimit(NewIPRateLimiter(r, burst)), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"success": true})
	})
	return engine
}

func post(engine *gin.Engine, ip string) int {
	req := httptest.NewRequest(http.MethodPost, "/chat", nil)
	req.RemoteAddr = ip + ":1234"
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w.Code
}

func TestRateLimitWithinBurst(t *testing.T) {
	engine := newLimitedRouter(1, 3)

	for i := 0; i < 3; i++ {
		assert.Equal(t, http.StatusOK, post(engine, "10.0.0.1"))
	}
}

func TestRateLimitRejectsBeyondBurst(t *testing.T) {
	engine := newLimitedRouter(1, 1)

	assert.Equal(t, http.StatusOK, post(engine, "10.0.0.2"))
	assert.Equal(t, http.StatusTooManyRequests, post(engine, "10.0.0.2"))
}

func TestRateLimitIsPerIP(t *testing.T) {
	engine := newLimitedRouter(1, 1)

	assert.Equal(t, http.StatusOK, post(engine, "10.0.0.3"))
	assert.Equal(t, http.StatusTooManyRequests, post(engine, "10.0.0.3"))
	assert.Equal(t, http.StatusOK, post(engine, "10.0.0.4"))
}

func TestSecurityHeaders(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.Use(SecurityHeaders())
	engine.GET("/health", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)

	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))

	req = httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	w = httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	assert.NotEmpty(t, w.Header().Get("Strict-Transport-Security"))
}
