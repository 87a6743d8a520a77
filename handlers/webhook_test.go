package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"barberflow/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

func TestVerifyMetaWebhook(t *testing.T) {
	gin.SetMode(gin.TestMode)
	config.AppConfig.WebhookVerifyToken = "secret-token"
	h := &WebhookHandler{Logger: zap.NewNop()}

	router := gin.New()
	router.GET("/webhook/meta", h.VerifyMetaWebhook)

	t.Run("valid token echoes challenge", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/webhook/meta?hub.mode=subscribe&hub.verify_token=secret-token&hub.challenge=12345", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, "12345", w.Body.String())
	})

	t.Run("wrong token rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/webhook/meta?hub.mode=subscribe&hub.verify_token=wrong&hub.challenge=12345", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("missing mode rejected", func(t *testing.T) {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet,
			"/webhook/meta?hub.verify_token=secret-token&hub.challenge=12345", nil)
		router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestTwilioWebhookRequiresFrom(t *testing.T) {
	gin.SetMode(gin.TestMode)
	h := &WebhookHandler{Logger: zap.NewNop()}

	router := gin.New()
	router.POST("/webhook/twilio", h.TwilioWebhook)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/webhook/twilio", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
