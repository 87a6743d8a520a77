package tenant

import "barberflow/models"

// TenantService exposes barbershop lookups and management.
type TenantService interface {
	GetByID(id int64) (*models.Tenant, error)
	GetAll() ([]models.Tenant, error)
	// ResolveByWhatsAppNumber maps the receiving WhatsApp number to its
	// tenant, falling back to the default (first active) tenant.
	ResolveByWhatsAppNumber(phone string) (*models.Tenant, error)
	FindByCity(city string) ([]models.Tenant, error)
	FindByCityAndDistrict(city, district string) ([]models.Tenant, error)
	Create(t *models.Tenant) error
	Update(t *models.Tenant) error
	Delete(id int64) error
}
