package notification

import "context"

// NotificationService delivers outbound messages to customers. The only
// channel today is WhatsApp via Twilio.
type NotificationService interface {
	SendWhatsAppText(ctx context.Context, to, body string) error
}
