// Package intent contains the handlers that advance the booking dialogue.
// Each handler is bound to one intent label and may read the extracted
// fields, mutate the session and call the external collaborators behind
// the interfaces below. Unfilled or malformed fields never fail the turn:
// a handler either applies a documented default or leaves the session
// untouched so the customer's next message can supply the slot.
package intent

import "barberflow/models"

// Handler is the shared capability all intent handlers implement.
type Handler interface {
	IntentKey() string
	Handle(session *models.BotSession, response *models.AgentResponse)
}

// TenantDirectory looks up barbershop branches by location.
type TenantDirectory interface {
	FindByCity(city string) ([]models.Tenant, error)
	FindByCityAndDistrict(city, district string) ([]models.Tenant, error)
}

// CustomerRegistrar resolves or creates customers arriving over WhatsApp.
type CustomerRegistrar interface {
	CreateFromWhatsApp(name, phone string, tenantID int64) (*models.Customer, error)
}

// ServiceCatalog lists a tenant's bookable services.
type ServiceCatalog interface {
	FindActiveByTenant(tenantID int64) ([]models.Service, error)
}

// AppointmentBooker creates appointments.
type AppointmentBooker interface {
	Create(req models.CreateAppointmentRequest, tenantID int64) (*models.Appointment, error)
}
