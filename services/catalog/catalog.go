package catalog

import (
	"fmt"

	catalogRepo "barberflow/database/repository/catalog"
	"barberflow/models"
)

// DefaultCatalogService implements CatalogService.
type DefaultCatalogService struct {
	Repo catalogRepo.ServiceRepository
}

func (s *DefaultCatalogService) GetByIDAndTenant(id, tenantID int64) (*models.Service, error) {
	return s.Repo.GetByIDAndTenant(id, tenantID)
}

func (s *DefaultCatalogService) FindActiveByTenant(tenantID int64) ([]models.Service, error) {
	return s.Repo.FindActiveByTenant(tenantID)
}

func (s *DefaultCatalogService) FindAllByTenant(tenantID int64) ([]models.Service, error) {
	return s.Repo.FindAllByTenant(tenantID)
}

func (s *DefaultCatalogService) Create(svc *models.Service) error {
	if svc.Name == "" || svc.TenantID == 0 {
		return fmt.Errorf("service name and tenant are required")
	}
	if svc.DurationMinutes <= 0 {
		return fmt.Errorf("service duration must be positive")
	}
	if svc.Currency == "" {
		svc.Currency = "TRY"
	}
	svc.Active = true
	return s.Repo.Create(svc)
}

func (s *DefaultCatalogService) Update(svc *models.Service) error {
	return s.Repo.Update(svc)
}

func (s *DefaultCatalogService) Delete(id int64) error {
	return s.Repo.Delete(id)
}
