package intent

import (
	"strings"

	"barberflow/models"

	"go.uber.org/zap"
)

// ProvideLocationHandler resolves the customer's stated location to a list
// of barbershop candidates.
type ProvideLocationHandler struct {
	Tenants TenantDirectory
	Logger  *zap.Logger
}

func (h *ProvideLocationHandler) IntentKey() string { return "provide_location" }

// Handle parses "City" or "City,District", looks up candidates and stores
// them on the session for the follow-up numeric selection.
func (h *ProvideLocationHandler) Handle(session *models.BotSession, response *models.AgentResponse) {
	value, ok := stringField(response.ExtractedInfo, "location_preference")
	if !ok {
		return
	}
	session.SelectedLocation = value

	city := value
	district := ""
	if idx := strings.Index(value, ","); idx >= 0 {
		city = strings.TrimSpace(value[:idx])
		district = strings.TrimSpace(value[idx+1:])
	}

	var (
		list []models.Tenant
		err  error
	)
	if district != "" {
		list, err = h.Tenants.FindByCityAndDistrict(city, district)
	} else {
		list, err = h.Tenants.FindByCity(city)
	}
	if err != nil {
		h.Logger.Warn("location lookup failed",
			zap.String("city", city), zap.String("district", district), zap.Error(err))
		list = nil
	}

	session.AvailableBarbers = list
	session.State = models.StateAwaitingBarberSelect
}
