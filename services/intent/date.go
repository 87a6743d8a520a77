package intent

import (
	"strings"
	"time"

	"barberflow/models"
)

// ProvideDateHandler stores the requested booking date.
type ProvideDateHandler struct{}

func (h *ProvideDateHandler) IntentKey() string { return "provide_date" }

// Handle accepts "YYYY-MM-DD" or "DD.MM.YYYY". A date that parses as
// neither silently defaults to today rather than rejecting the turn.
func (h *ProvideDateHandler) Handle(session *models.BotSession, response *models.AgentResponse) {
	raw, ok := stringField(response.ExtractedInfo, "date_preference")
	if !ok {
		return
	}

	var parsed time.Time
	var err error
	if strings.Contains(raw, ".") {
		parsed, err = time.ParseInLocation("02.01.2006", raw, time.Local)
	} else {
		parsed, err = time.ParseInLocation("2006-01-02", raw, time.Local)
	}
	if err != nil {
		now := time.Now()
		parsed = time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.Local)
	}

	session.SelectedDate = parsed
	session.State = models.StateAwaitingTime
}
