package intent

import (
	"strconv"
	"strings"
	"time"

	"barberflow/models"
)

// ProvideTimeHandler combines the requested time with the selected date.
type ProvideTimeHandler struct{}

func (h *ProvideTimeHandler) IntentKey() string { return "provide_time" }

// Handle accepts "HH:MM" or compact "HHMM"; anything else defaults to
// 09:00. Without a selected date the computed time is not stored, but the
// state still advances so the confirmation prompt can run.
func (h *ProvideTimeHandler) Handle(session *models.BotSession, response *models.AgentResponse) {
	raw, ok := stringField(response.ExtractedInfo, "time_preference")
	if !ok {
		return
	}

	hour, minute := parseClock(raw)
	if !session.SelectedDate.IsZero() {
		d := session.SelectedDate
		session.SelectedTime = time.Date(d.Year(), d.Month(), d.Day(), hour, minute, 0, 0, d.Location())
	}
	session.State = models.StateAwaitingConfirmation
}

func parseClock(raw string) (hour, minute int) {
	hour, minute = 9, 0

	if strings.Contains(raw, ":") {
		parts := strings.SplitN(raw, ":", 2)
		h, errH := strconv.Atoi(strings.TrimSpace(parts[0]))
		m, errM := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errH == nil && errM == nil && h >= 0 && h < 24 && m >= 0 && m < 60 {
			return h, m
		}
		return hour, minute
	}

	if len(raw) >= 4 {
		h, errH := strconv.Atoi(raw[0:2])
		m, errM := strconv.Atoi(raw[2:4])
		if errH == nil && errM == nil && h >= 0 && h < 24 && m >= 0 && m < 60 {
			return h, m
		}
	}
	return hour, minute
}
