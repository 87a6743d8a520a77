package customer

import "barberflow/models"

// CustomerService exposes customer lookups and WhatsApp onboarding.
type CustomerService interface {
	GetByID(id int64) (*models.Customer, error)
	FindAllByTenant(tenantID int64) ([]models.Customer, error)
	// CreateFromWhatsApp returns the existing customer for (phone, tenant)
	// or creates one. An empty name falls back to a placeholder.
	CreateFromWhatsApp(name, phone string, tenantID int64) (*models.Customer, error)
}
