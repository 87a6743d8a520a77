package customerRepo

import "barberflow/models"

// CustomerRepository defines methods for customer data access.
type CustomerRepository interface {
	// GetByID retrieves a customer by its numeric ID.
	GetByID(id int64) (*models.Customer, error)
	// GetByPhoneAndTenant retrieves an active customer by phone within a tenant.
	GetByPhoneAndTenant(phone string, tenantID int64) (*models.Customer, error)
	// FindAllByTenant retrieves all active customers of a tenant.
	FindAllByTenant(tenantID int64) ([]models.Customer, error)
	// Create inserts a new customer, allocating its ID.
	Create(c *models.Customer) error
	// Update modifies an existing customer.
	Update(c *models.Customer) error
}
