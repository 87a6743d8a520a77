// Package conversation hosts the control loop that turns one inbound
// WhatsApp message into one dialogue turn.
package conversation

import (
	"context"
	"fmt"
	"strings"

	"barberflow/models"
	"barberflow/services/agent"
	"barberflow/services/intent"
	"barberflow/services/session"

	"go.uber.org/zap"
)

// Orchestrator merges AI-classified intents with deterministic shortcuts
// and dispatches to the matching intent handler.
type Orchestrator struct {
	gateway  agent.Gateway
	sessions *session.Store
	handlers map[string]intent.Handler
	logger   *zap.Logger
}

// NewOrchestrator builds the fixed intent-key → handler mapping. Handler
// keys are matched case-insensitively against the classified intent.
func NewOrchestrator(gateway agent.Gateway, sessions *session.Store, handlers []intent.Handler, logger *zap.Logger) *Orchestrator {
	byKey := make(map[string]intent.Handler, len(handlers))
	for _, h := range handlers {
		byKey[strings.ToLower(h.IntentKey())] = h
	}
	return &Orchestrator{
		gateway:  gateway,
		sessions: sessions,
		handlers: byKey,
		logger:   logger,
	}
}

// Affirmations recognized without consulting the classifier while the
// session awaits confirmation. The first group matches anywhere in the
// message; the second only as a standalone word, so replies like "yok"
// or "dokuz" never read as consent.
var (
	affirmationSubstrings = []string{"evet", "onay", "tamam"}
	affirmationWords      = []string{"e", "ok", "yes"}
)

// HandleIncoming processes one inbound message and returns the turn result;
// the reply text inside it is what goes back over the chat channel. The
// session lock is held for the whole turn so duplicate deliveries of the
// same customer's message serialize instead of interleaving writes.
func (o *Orchestrator) HandleIncoming(ctx context.Context, phone string, tenantID int64, message string) *models.AgentResponse {
	sess := o.sessions.GetOrCreate(phone, tenantID)
	sess.Lock()
	defer sess.Unlock()

	sess.LastMessage = message

	// Fast path: an unambiguous "yes" while awaiting confirmation goes
	// straight to the confirm handler, skipping the classifier round trip.
	if sess.State == models.StateAwaitingConfirmation && isAffirmation(message) {
		quick := &models.AgentResponse{
			OK:            true,
			Intent:        "confirm_appointment",
			Reply:         "Onayınız alındı, randevunuz oluşturuluyor.",
			NextState:     "completed",
			ExtractedInfo: map[string]any{},
		}
		if h, ok := o.handlers[quick.Intent]; ok {
			h.Handle(sess, quick)
		}
		return quick
	}

	req := &models.AgentRequest{
		TenantID:     tenantID,
		FromNumber:   phone,
		Message:      message,
		SessionID:    sess.SessionID,
		CurrentState: string(sess.State),
		CustomerID:   sess.CustomerID,
	}

	resp := o.gateway.Respond(ctx, req)
	if resp == nil {
		return models.FailedAgentResponse()
	}

	if resp.NextState != "" {
		if next, ok := normalizeState(resp.NextState); ok {
			sess.State = next
		} else {
			o.logger.Warn("unrecognized next state from agent",
				zap.String("nextState", resp.NextState))
		}
	}

	if resp.ExtractedInfo != nil {
		// Mirror the location onto the session even when the turn was not
		// classified as provide_location, so downstream steps can rely on it.
		if loc, ok := resp.ExtractedInfo["location_preference"]; ok && loc != nil {
			sess.SelectedLocation = fmt.Sprint(loc)
		}

		if h, ok := o.handlers[strings.ToLower(resp.Intent)]; ok {
			h.Handle(sess, resp)
		}
	}

	return resp
}

func isAffirmation(message string) bool {
	lower := strings.ToLower(strings.TrimSpace(message))
	for _, word := range affirmationSubstrings {
		if strings.Contains(lower, word) {
			return true
		}
	}
	for _, field := range strings.Fields(lower) {
		for _, word := range affirmationWords {
			if field == word {
				return true
			}
		}
	}
	return false
}

// turkishUpper maps the accented uppercase letters the agent occasionally
// emits in state labels to their plain equivalents.
var turkishUpper = strings.NewReplacer(
	"İ", "I", "Ğ", "G", "Ü", "U", "Ş", "S", "Ö", "O", "Ç", "C",
)

var knownStates = map[string]models.BotState{
	"INITIAL":                   models.StateInitial,
	"AWAITING_LOCATION":         models.StateAwaitingLocation,
	"AWAITING_BARBER_SELECTION": models.StateAwaitingBarberSelect,
	"AWAITING_NAME":             models.StateAwaitingName,
	"AWAITING_SERVICE":          models.StateAwaitingService,
	"AWAITING_DATE":             models.StateAwaitingDate,
	"AWAITING_TIME":             models.StateAwaitingTime,
	"AWAITING_CONFIRMATION":     models.StateAwaitingConfirmation,
	"COMPLETED":                 models.StateCompleted,
}

// normalizeState upper-cases and de-accents a state label before matching
// it against the known set. Unknown labels are ignored by the caller.
func normalizeState(label string) (models.BotState, bool) {
	s := turkishUpper.Replace(strings.ToUpper(strings.TrimSpace(label)))
	state, ok := knownStates[s]
	return state, ok
}
