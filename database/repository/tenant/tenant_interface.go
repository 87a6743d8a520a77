package tenantRepo

import "barberflow/models"

// TenantRepository defines methods for tenant data access.
type TenantRepository interface {
	// GetByID retrieves a tenant by its numeric ID.
	GetByID(id int64) (*models.Tenant, error)
	// GetAll retrieves all tenants.
	GetAll() ([]models.Tenant, error)
	// FindFirstActive retrieves the default tenant used when a message
	// cannot be routed by the receiving WhatsApp number.
	FindFirstActive() (*models.Tenant, error)
	// FindByPhoneNumber retrieves the active tenant owning a WhatsApp number.
	FindByPhoneNumber(phone string) (*models.Tenant, error)
	// FindByCity retrieves active tenants in a city (case-insensitive).
	FindByCity(city string) ([]models.Tenant, error)
	// FindByCityAndDistrict narrows FindByCity to a district.
	FindByCityAndDistrict(city, district string) ([]models.Tenant, error)
	// Create inserts a new tenant, allocating its ID.
	Create(t *models.Tenant) error
	// Update modifies an existing tenant.
	Update(t *models.Tenant) error
	// Delete removes a tenant by its ID.
	Delete(id int64) error

	// GetUserByUsername retrieves an active staff account by username.
	GetUserByUsername(username string) (*models.TenantUser, error)
	// CreateUser inserts a new staff account, allocating its ID.
	CreateUser(u *models.TenantUser) error
}
