package notification

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"go.uber.org/zap"
)

// TwilioService sends WhatsApp messages through the Twilio REST API.
type TwilioService struct {
	AccountSID string
	AuthToken  string
	From       string // "whatsapp:+14155238886"
	BaseURL    string // "https://api.twilio.com/2010-04-01"
	Client     *http.Client
	Logger     *zap.Logger
}

// NewTwilioService creates a Twilio-backed notification service.
func NewTwilioService(accountSID, authToken, from, baseURL string, logger *zap.Logger) *TwilioService {
	return &TwilioService{
		AccountSID: accountSID,
		AuthToken:  authToken,
		From:       withWhatsAppScheme(from),
		BaseURL:    baseURL,
		Client:     &http.Client{Timeout: 10 * time.Second},
		Logger:     logger,
	}
}

// SendWhatsAppText delivers one text message. The recipient may be given
// with or without the "whatsapp:" scheme.
func (s *TwilioService) SendWhatsAppText(ctx context.Context, to, body string) error {
	endpoint := fmt.Sprintf("%s/Accounts/%s/Messages.json", s.BaseURL, s.AccountSID)

	form := url.Values{}
	form.Set("To", withWhatsAppScheme(to))
	form.Set("From", s.From)
	form.Set("Body", body)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to build Twilio request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(s.AccountSID, s.AuthToken)

	resp, err := s.Client.Do(req)
	if err != nil {
		return fmt.Errorf("Twilio call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		s.Logger.Warn("Twilio rejected message",
			zap.Int("status", resp.StatusCode), zap.ByteString("body", detail))
		return fmt.Errorf("Twilio returned status %d", resp.StatusCode)
	}
	return nil
}

func withWhatsAppScheme(number string) string {
	if strings.HasPrefix(number, "whatsapp:") {
		return number
	}
	if !strings.HasPrefix(number, "+") {
		number = "+" + number
	}
	return "whatsapp:" + number
}

var _ NotificationService = (*TwilioService)(nil)
