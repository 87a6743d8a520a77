package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestGetClientIP(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newCtx := func(remote string, headers map[string]string) *gin.Context {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.RemoteAddr = remote
		for k, v := range headers {
			req.Header.Set(k, v)
		}
		c.Request = req
		return c
	}

	assert.Equal(t, "203.0.113.9", getClientIP(newCtx("10.0.0.1:1234",
		map[string]string{"X-Forwarded-For": "203.0.113.9, 10.0.0.1"})))
	assert.Equal(t, "203.0.113.9", getClientIP(newCtx("10.0.0.1:1234",
		map[string]string{"X-Forwarded-For": "203.0.113.9"})))
	assert.Equal(t, "203.0.113.9", getClientIP(newCtx("10.0.0.1:1234",
		map[string]string{"X-Real-IP": "203.0.113.9"})))
	assert.Equal(t, "10.0.0.1", getClientIP(newCtx("10.0.0.1:1234", nil)))
}
