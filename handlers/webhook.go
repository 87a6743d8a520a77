package handlers

import (
	"net/http"
	"strings"
	"time"

	"barberflow/config"
	"barberflow/services/conversation"
	"barberflow/services/notification"
	"barberflow/services/speech"
	tenantService "barberflow/services/tenant"
	"barberflow/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const dedupeTTL = 24 * time.Hour

// WebhookHandler receives inbound WhatsApp traffic from Twilio and from the
// Meta WhatsApp Business API and feeds it to the conversation orchestrator.
type WebhookHandler struct {
	Orchestrator *conversation.Orchestrator
	Tenants      tenantService.TenantService
	Notifier     notification.NotificationService
	Transcriber  speech.Transcriber
	Logger       *zap.Logger
}

// TwilioWebhook handles POST /webhook/twilio (form-encoded).
func (h *WebhookHandler) TwilioWebhook(c *gin.Context) {
	from := c.PostForm("From")
	to := c.PostForm("To")
	body := c.PostForm("Body")
	messageSid := c.PostForm("MessageSid")
	mediaURL := c.PostForm("MediaUrl0")
	mediaType := c.PostForm("MediaContentType0")

	if from == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing From"})
		return
	}

	// Twilio retries deliveries; process each MessageSid once.
	if messageSid != "" && !h.claimMessage(c, messageSid) {
		c.Status(http.StatusOK)
		return
	}

	phone := utils.StripWhatsAppPrefix(from)

	tenant, err := h.Tenants.ResolveByWhatsAppNumber(utils.NormalizePhone(utils.StripWhatsAppPrefix(to)))
	if err != nil {
		h.Logger.Error("TwilioWebhook: no tenant for inbound number",
			zap.String("to", to), zap.Error(err))
		c.JSON(http.StatusNotFound, gin.H{"error": "no tenant configured for this number"})
		return
	}

	if body == "" && mediaURL != "" && strings.HasPrefix(mediaType, "audio/") && h.Transcriber != nil {
		text, err := h.Transcriber.TranscribeURL(c.Request.Context(), mediaURL)
		if err != nil {
			h.Logger.Warn("TwilioWebhook: voice note transcription failed",
				zap.String("messageSid", messageSid), zap.Error(err))
		} else {
			body = text
		}
	}
	if strings.TrimSpace(body) == "" {
		c.Status(http.StatusNoContent)
		return
	}

	resp := h.Orchestrator.HandleIncoming(c.Request.Context(), phone, tenant.ID, body)
	h.reply(c, phone, resp.Reply)
	c.Status(http.StatusNoContent)
}

// VerifyMetaWebhook handles the GET verification handshake of the Meta
// WhatsApp Business API.
func (h *WebhookHandler) VerifyMetaWebhook(c *gin.Context) {
	mode := c.Query("hub.mode")
	token := c.Query("hub.verify_token")
	challenge := c.Query("hub.challenge")

	if mode == "subscribe" && token != "" && token == config.AppConfig.WebhookVerifyToken {
		c.String(http.StatusOK, challenge)
		return
	}
	c.Status(http.StatusForbidden)
}

// metaWebhookPayload is the slice of the Meta notification format we consume.
type metaWebhookPayload struct {
	Entry []struct {
		Changes []struct {
			Value struct {
				Metadata struct {
					DisplayPhoneNumber string `json:"display_phone_number"`
				} `json:"metadata"`
				Messages []struct {
					ID   string `json:"id"`
					From string `json:"from"`
					Type string `json:"type"`
					Text struct {
						Body string `json:"body"`
					} `json:"text"`
				} `json:"messages"`
			} `json:"value"`
		} `json:"changes"`
	} `json:"entry"`
}

// MetaWebhook handles POST /webhook/meta (JSON notifications).
func (h *WebhookHandler) MetaWebhook(c *gin.Context) {
	var payload metaWebhookPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload", "message": err.Error()})
		return
	}

	for _, entry := range payload.Entry {
		for _, change := range entry.Changes {
			value := change.Value
			tenant, err := h.Tenants.ResolveByWhatsAppNumber(utils.NormalizePhone(value.Metadata.DisplayPhoneNumber))
			if err != nil {
				h.Logger.Error("MetaWebhook: no tenant for inbound number",
					zap.String("displayPhoneNumber", value.Metadata.DisplayPhoneNumber), zap.Error(err))
				continue
			}

			for _, msg := range value.Messages {
				if msg.Type != "text" || strings.TrimSpace(msg.Text.Body) == "" {
					continue
				}
				if msg.ID != "" && !h.claimMessage(c, msg.ID) {
					continue
				}
				resp := h.Orchestrator.HandleIncoming(c.Request.Context(), msg.From, tenant.ID, msg.Text.Body)
				h.reply(c, msg.From, resp.Reply)
			}
		}
	}
	c.Status(http.StatusOK)
}

// claimMessage records a message ID in Redis; it returns false when the ID
// was already seen within the dedupe window. Redis trouble never drops a
// message, it only disables deduplication for that delivery.
func (h *WebhookHandler) claimMessage(c *gin.Context, id string) bool {
	ok, err := utils.GetCacheClient().SetNX(c.Request.Context(), "webhook:msg:"+id, 1, dedupeTTL).Result()
	if err != nil {
		h.Logger.Warn("message dedupe unavailable", zap.Error(err))
		return true
	}
	if !ok {
		h.Logger.Info("duplicate webhook delivery skipped", zap.String("messageId", id))
	}
	return ok
}

func (h *WebhookHandler) reply(c *gin.Context, phone, text string) {
	if text == "" {
		return
	}
	if err := h.Notifier.SendWhatsAppText(c.Request.Context(), phone, text); err != nil {
		h.Logger.Error("failed to send reply", zap.String("phone", phone), zap.Error(err))
	}
}
