package catalog

import "barberflow/models"

// CatalogService exposes a tenant's bookable services.
type CatalogService interface {
	GetByIDAndTenant(id, tenantID int64) (*models.Service, error)
	FindActiveByTenant(tenantID int64) ([]models.Service, error)
	FindAllByTenant(tenantID int64) ([]models.Service, error)
	Create(svc *models.Service) error
	Update(svc *models.Service) error
	Delete(id int64) error
}
