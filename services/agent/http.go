package agent

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"barberflow/models"

	"go.uber.org/zap"
)

// HTTPGateway talks to the external NLU agent over its REST interface.
type HTTPGateway struct {
	baseURL string
	client  *http.Client
	logger  *zap.Logger
}

// NewHTTPGateway creates a gateway for the agent reachable at baseURL.
func NewHTTPGateway(baseURL string, logger *zap.Logger) *HTTPGateway {
	return &HTTPGateway{
		baseURL: baseURL,
		client:  &http.Client{Timeout: 15 * time.Second},
		logger:  logger,
	}
}

// Respond sends one conversation turn to the agent. Any failure along the
// way (marshalling, transport, status, decoding) yields the sentinel
// failure response instead of an error.
func (g *HTTPGateway) Respond(ctx context.Context, req *models.AgentRequest) *models.AgentResponse {
	body, err := json.Marshal(req)
	if err != nil {
		g.logger.Error("agent request marshal failed", zap.Error(err))
		return models.FailedAgentResponse()
	}

	url := g.baseURL + "/v1/agent/respond"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		g.logger.Error("agent request build failed", zap.Error(err))
		return models.FailedAgentResponse()
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(httpReq)
	if err != nil {
		g.logger.Error("agent call failed", zap.String("url", url), zap.Error(err))
		return models.FailedAgentResponse()
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		g.logger.Error("agent returned unexpected status",
			zap.String("url", url), zap.Int("status", resp.StatusCode))
		return models.FailedAgentResponse()
	}

	var out models.AgentResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		g.logger.Error("agent response decode failed", zap.Error(err))
		return models.FailedAgentResponse()
	}
	return &out
}

var _ Gateway = (*HTTPGateway)(nil)
