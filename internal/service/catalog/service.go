package catalog

import (
	"context"
	"fmt"

	"github.com/petsas/appointment-service/internal/service/catalog/models"
)

// Service сервис для работы с каталогом услуг и специалистов
type Service struct {
	catalogRepo CatalogRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalogRepo CatalogRepository, logger Logger) *Service {
	return &Service{
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// GetCatalog получает услуги и специалистов для мастера записи
func (s *Service) GetCatalog(ctx context.Context) (*models.CatalogResponse, error) {
	services, err := s.catalogRepo.ListServices(ctx)
	if err != nil {
		s.logger.Error("GetCatalog: failed to list services: %v", err)
		return nil, fmt.Errorf("%w: GetCatalog - failed to list services: %v", ErrInternal, err)
	}

	professionals, err := s.catalogRepo.ListProfessionals(ctx)
	if err != nil {
		s.logger.Error("GetCatalog: failed to list professionals: %v", err)
		return nil, fmt.Errorf("%w: GetCatalog - failed to list professionals: %v", ErrInternal, err)
	}

	return models.FromDomainCatalog(services, professionals), nil
}
