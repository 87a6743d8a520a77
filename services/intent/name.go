package intent

import (
	"barberflow/models"
	"barberflow/utils"

	"go.uber.org/zap"
)

// ProvideNameHandler resolves the customer's identity, creating the
// customer record on first contact.
type ProvideNameHandler struct {
	Customers CustomerRegistrar
	Logger    *zap.Logger
}

func (h *ProvideNameHandler) IntentKey() string { return "provide_name" }

func (h *ProvideNameHandler) Handle(session *models.BotSession, response *models.AgentResponse) {
	name, ok := stringField(response.ExtractedInfo, "customer_name")
	if !ok {
		return
	}

	phone := utils.NormalizePhone(session.Phone)
	customer, err := h.Customers.CreateFromWhatsApp(name, phone, session.TargetTenantID())
	if err != nil {
		h.Logger.Warn("customer resolution failed",
			zap.String("phone", phone), zap.Error(err))
		return
	}

	session.CustomerID = customer.ID
	session.State = models.StateAwaitingService
}
