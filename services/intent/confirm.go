package intent

import (
	"time"

	"barberflow/models"

	"go.uber.org/zap"
)

// ConfirmAppointmentHandler turns the accumulated session slots into a
// booking request against the appointment collaborator.
type ConfirmAppointmentHandler struct {
	Catalog      ServiceCatalog
	Appointments AppointmentBooker
	Logger       *zap.Logger
}

func (h *ConfirmAppointmentHandler) IntentKey() string { return "confirm_appointment" }

// Handle fills defaults for anything the dialogue left open: the service
// falls back to the tenant's first active one, the start time to the
// selected date at 12:00, or failing that to an hour from now. A booking
// failure is logged but deliberately not surfaced to the customer; the
// session then stays in AWAITING_CONFIRMATION so a repeated "evet" retries.
func (h *ConfirmAppointmentHandler) Handle(session *models.BotSession, response *models.AgentResponse) {
	if session.CustomerID == 0 {
		return
	}
	tenantID := session.TargetTenantID()
	if tenantID == 0 {
		return
	}

	var serviceID int64
	if len(session.SelectedServiceIDs) > 0 {
		serviceID = session.SelectedServiceIDs[0]
	} else {
		services, err := h.Catalog.FindActiveByTenant(tenantID)
		if err != nil || len(services) == 0 {
			return
		}
		serviceID = services[0].ID
	}

	start := session.SelectedTime
	if start.IsZero() {
		if !session.SelectedDate.IsZero() {
			d := session.SelectedDate
			start = time.Date(d.Year(), d.Month(), d.Day(), 12, 0, 0, 0, d.Location())
		} else {
			start = time.Now().Add(time.Hour)
		}
	}

	req := models.CreateAppointmentRequest{
		CustomerID: session.CustomerID,
		ServiceID:  serviceID,
		StartTime:  start,
	}
	if _, err := h.Appointments.Create(req, tenantID); err != nil {
		h.Logger.Error("booking creation failed",
			zap.Int64("tenantId", tenantID),
			zap.Int64("customerId", session.CustomerID),
			zap.Error(err))
		return
	}
	session.State = models.StateCompleted
}
