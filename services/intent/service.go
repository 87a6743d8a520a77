package intent

import (
	"strings"

	"barberflow/models"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// ProvideServiceHandler matches the customer's free-text preference against
// the target tenant's catalog and aggregates the selection totals.
type ProvideServiceHandler struct {
	Catalog ServiceCatalog
	Logger  *zap.Logger
}

func (h *ProvideServiceHandler) IntentKey() string { return "provide_service" }

// Handle matches each service by its first name token, case-insensitively.
// "haircut and beard" therefore picks up both "Haircut" and "Beard Trim".
// The new selection fully replaces the previous one. With no match at all
// the catalog's first service is taken, so the flow never stalls on a
// preference the catalog cannot satisfy.
func (h *ProvideServiceHandler) Handle(session *models.BotSession, response *models.AgentResponse) {
	pref, ok := stringField(response.ExtractedInfo, "service_preference")
	if !ok {
		return
	}

	services, err := h.Catalog.FindActiveByTenant(session.TargetTenantID())
	if err != nil {
		h.Logger.Warn("service catalog load failed",
			zap.Int64("tenantId", session.TargetTenantID()), zap.Error(err))
		return
	}

	prefLower := strings.ToLower(pref)
	session.SelectedServiceIDs = session.SelectedServiceIDs[:0]

	totalDuration := 0
	totalPrice := decimal.Zero
	currency := ""
	for _, svc := range services {
		name := strings.ToLower(svc.Name)
		if name == "" {
			continue
		}
		token := strings.Fields(name)[0]
		if !strings.Contains(prefLower, token) {
			continue
		}
		session.SelectedServiceIDs = append(session.SelectedServiceIDs, svc.ID)
		totalDuration += svc.DurationMinutes
		totalPrice = totalPrice.Add(svc.Price)
		if currency == "" && svc.Currency != "" {
			currency = svc.Currency
		} else if svc.Currency != "" && svc.Currency != currency {
			h.Logger.Warn("mixed currencies in service selection",
				zap.String("kept", currency), zap.String("ignored", svc.Currency))
		}
	}

	if len(session.SelectedServiceIDs) == 0 && len(services) > 0 {
		first := services[0]
		session.SelectedServiceIDs = append(session.SelectedServiceIDs, first.ID)
		totalDuration = first.DurationMinutes
		totalPrice = first.Price
		currency = first.Currency
	}

	session.TotalDurationMinutes = totalDuration
	session.TotalPrice = totalPrice
	session.TotalCurrency = currency
	session.State = models.StateAwaitingDate
}
