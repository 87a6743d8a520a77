// File: services/agent/gemini.go
package agent

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"barberflow/models"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
	"google.golang.org/api/option"
)

// GeminiGateway classifies turns with Gemini directly, used when no
// external agent URL is configured.
type GeminiGateway struct {
	model  *genai.GenerativeModel
	logger *zap.Logger
}

// NewGeminiGateway creates a Gemini-backed gateway.
func NewGeminiGateway(apiKey string, logger *zap.Logger) (*GeminiGateway, error) {
	ctx := context.Background()
	client, err := genai.NewClient(ctx, option.WithAPIKey(apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	model := client.GenerativeModel("models/gemini-1.5-pro")
	return &GeminiGateway{model: model, logger: logger}, nil
}

const geminiPrompt = `Sen bir kuaför randevu asistanısın. Müşterinin mesajını sınıflandır.
Geçerli intent değerleri: provide_location, select_barber, provide_name, provide_service,
provide_date, provide_time, confirm_appointment, greeting, other.
Geçerli durumlar: AWAITING_LOCATION, AWAITING_BARBER_SELECTION, AWAITING_NAME,
AWAITING_SERVICE, AWAITING_DATE, AWAITING_TIME, AWAITING_CONFIRMATION, COMPLETED.
Sadece şu JSON şemasıyla yanıt ver, başka hiçbir şey yazma:
{"intent": "...", "reply": "müşteriye Türkçe yanıt", "next_state": "...", "extracted_info": {}}
extracted_info içine uygunsa şu alanları koy: customer_name, service_preference,
date_preference, time_preference, location_preference, barber_selection.

Mevcut durum: %s
Müşteri mesajı: %s`

type geminiReply struct {
	Intent        string         `json:"intent"`
	Reply         string         `json:"reply"`
	NextState     string         `json:"next_state"`
	ExtractedInfo map[string]any `json:"extracted_info"`
}

// Respond classifies the turn with Gemini. Parse or API failures yield the
// sentinel failure response.
func (g *GeminiGateway) Respond(ctx context.Context, req *models.AgentRequest) *models.AgentResponse {
	prompt := fmt.Sprintf(geminiPrompt, req.CurrentState, req.Message)

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		g.logger.Error("gemini generate failed", zap.Error(err))
		return models.FailedAgentResponse()
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		g.logger.Error("gemini returned no candidates")
		return models.FailedAgentResponse()
	}

	var sb strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if textPart, ok := part.(genai.Text); ok {
			sb.WriteString(string(textPart))
		}
	}

	var parsed geminiReply
	if err := json.Unmarshal([]byte(stripFences(sb.String())), &parsed); err != nil {
		g.logger.Error("gemini reply parse failed", zap.Error(err), zap.String("raw", sb.String()))
		return models.FailedAgentResponse()
	}

	return &models.AgentResponse{
		OK:            true,
		Intent:        parsed.Intent,
		Reply:         parsed.Reply,
		NextState:     parsed.NextState,
		ExtractedInfo: parsed.ExtractedInfo,
	}
}

// stripFences removes a surrounding markdown code fence, which Gemini adds
// even when told not to.
func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, "```") {
		s = strings.TrimPrefix(s, "```json")
		s = strings.TrimPrefix(s, "```")
		s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	}
	return strings.TrimSpace(s)
}

var _ Gateway = (*GeminiGateway)(nil)
