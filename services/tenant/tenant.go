package tenant

import (
	"fmt"

	tenantRepo "barberflow/database/repository/tenant"
	"barberflow/models"
	"barberflow/utils"
)

// DefaultTenantService implements TenantService.
type DefaultTenantService struct {
	Repo tenantRepo.TenantRepository
}

func (s *DefaultTenantService) GetByID(id int64) (*models.Tenant, error) {
	return s.Repo.GetByID(id)
}

func (s *DefaultTenantService) GetAll() ([]models.Tenant, error) {
	return s.Repo.GetAll()
}

// ResolveByWhatsAppNumber maps the receiving WhatsApp number to its tenant.
// Messages arriving on an unknown number land on the default tenant, so a
// misconfigured sandbox number still reaches a shop.
func (s *DefaultTenantService) ResolveByWhatsAppNumber(phone string) (*models.Tenant, error) {
	if phone != "" {
		t, err := s.Repo.FindByPhoneNumber(utils.NormalizePhone(phone))
		if err != nil {
			return nil, err
		}
		if t != nil {
			return t, nil
		}
	}

	t, err := s.Repo.FindFirstActive()
	if err != nil {
		return nil, err
	}
	if t == nil {
		return nil, fmt.Errorf("no active tenant configured")
	}
	return t, nil
}

func (s *DefaultTenantService) FindByCity(city string) ([]models.Tenant, error) {
	return s.Repo.FindByCity(city)
}

func (s *DefaultTenantService) FindByCityAndDistrict(city, district string) ([]models.Tenant, error) {
	return s.Repo.FindByCityAndDistrict(city, district)
}

func (s *DefaultTenantService) Create(t *models.Tenant) error {
	if t.Name == "" || t.PhoneNumber == "" {
		return fmt.Errorf("tenant name and phone number are required")
	}
	if t.Timezone == "" {
		t.Timezone = "Europe/Istanbul"
	}
	if t.WorkingHoursStart == "" {
		t.WorkingHoursStart = "08:00"
	}
	if t.WorkingHoursEnd == "" {
		t.WorkingHoursEnd = "22:00"
	}
	t.Active = true
	return s.Repo.Create(t)
}

func (s *DefaultTenantService) Update(t *models.Tenant) error {
	return s.Repo.Update(t)
}

func (s *DefaultTenantService) Delete(id int64) error {
	return s.Repo.Delete(id)
}
