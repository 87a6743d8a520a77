package customer

import (
	"fmt"

	customerRepo "barberflow/database/repository/customer"
	"barberflow/models"
)

// DefaultCustomerService implements CustomerService.
type DefaultCustomerService struct {
	Repo customerRepo.CustomerRepository
}

func (s *DefaultCustomerService) GetByID(id int64) (*models.Customer, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultCustomerService) FindAllByTenant(tenantID int64) ([]models.Customer, error) {
	return s.Repo.FindAllByTenant(tenantID)
}

// CreateFromWhatsApp resolves the customer by phone within the tenant and
// creates the record on first contact.
func (s *DefaultCustomerService) CreateFromWhatsApp(name, phone string, tenantID int64) (*models.Customer, error) {
	existing, err := s.Repo.GetByPhoneAndTenant(phone, tenantID)
	if err != nil {
		return nil, fmt.Errorf("customer lookup failed: %w", err)
	}
	if existing != nil {
		return existing, nil
	}

	if name == "" {
		name = "WhatsApp Müşteri"
	}
	c := &models.Customer{
		TenantID:           tenantID,
		Name:               name,
		PhoneNumber:        phone,
		Active:             true,
		AllowNotifications: true,
	}
	if err := s.Repo.Create(c); err != nil {
		return nil, err
	}
	return c, nil
}
