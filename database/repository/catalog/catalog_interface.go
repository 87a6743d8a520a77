package catalogRepo

import "barberflow/models"

// ServiceRepository defines methods for service-catalog data access.
type ServiceRepository interface {
	// GetByIDAndTenant retrieves an active service by ID within a tenant.
	GetByIDAndTenant(id, tenantID int64) (*models.Service, error)
	// FindActiveByTenant retrieves a tenant's active services ordered by sortOrder.
	FindActiveByTenant(tenantID int64) ([]models.Service, error)
	// FindAllByTenant retrieves all of a tenant's services, active or not.
	FindAllByTenant(tenantID int64) ([]models.Service, error)
	// Create inserts a new service, allocating its ID.
	Create(s *models.Service) error
	// Update modifies an existing service.
	Update(s *models.Service) error
	// Delete removes a service by its ID.
	Delete(id int64) error
}
