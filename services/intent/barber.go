package intent

import "barberflow/models"

// SelectBarberHandler resolves the customer's numeric pick against either
// the candidate list the agent sent along or the one stored on the session.
type SelectBarberHandler struct{}

func (h *SelectBarberHandler) IntentKey() string { return "select_barber" }

// Handle no-ops on a non-numeric or out-of-range selection so the customer
// can simply pick again.
func (h *SelectBarberHandler) Handle(session *models.BotSession, response *models.AgentResponse) {
	index, ok := selectionIndex(response.ExtractedInfo, "barber_selection")
	if !ok {
		return
	}

	// Prefer the list the agent itself presented.
	if options, ok := optionList(response.ExtractedInfo, "barber_options"); ok {
		if index >= 0 && index < len(options) {
			if id, ok := numericID(options[index]); ok {
				session.SelectedTenantID = id
				session.State = models.StateAwaitingName
				return
			}
		}
	}

	available := session.AvailableBarbers
	if index >= 0 && index < len(available) {
		session.SelectedTenantID = available[index].ID
		session.State = models.StateAwaitingName
	}
}
