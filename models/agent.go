package models

// AgentRequest is one conversation turn sent to the NLU agent.
type AgentRequest struct {
	TenantID     int64  `json:"tenant_id"`
	FromNumber   string `json:"from_number"`
	Message      string `json:"message"`
	SessionID    string `json:"sessionId,omitempty"`
	CurrentState string `json:"currentState,omitempty"`
	CustomerID   int64  `json:"customerId,omitempty"`
}

// AgentResponse is the NLU agent's classification of a turn. ExtractedInfo
// is an open map whose vocabulary evolves with the agent; handlers access
// it through typed helpers rather than raw assertions.
type AgentResponse struct {
	OK            bool           `json:"ok"`
	Intent        string         `json:"intent"`
	Reply         string         `json:"reply"`
	NextState     string         `json:"nextState,omitempty"`
	ExtractedInfo map[string]any `json:"extractedInfo,omitempty"`
}

// FailedAgentResponse is the sentinel returned when the agent call fails
// outright. The conversation degrades to a generic failure turn instead of
// surfacing an error.
func FailedAgentResponse() *AgentResponse {
	return &AgentResponse{OK: false, Intent: "error", Reply: ""}
}
