package agent

import (
	"context"

	"barberflow/models"
)

// Gateway abstracts the NLU agent that classifies conversation turns.
// Implementations never return nil and never fail loudly: transport or
// parse errors degrade to models.FailedAgentResponse so a classifier
// outage cannot take a conversation down with it.
type Gateway interface {
	Respond(ctx context.Context, req *models.AgentRequest) *models.AgentResponse
}
