package models

import (
	"github.com/petsas/appointment-service/internal/domain"
)

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID              string  `json:"id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	DurationMinutes int     `json:"durationMinutes"`
	Price           float64 `json:"price"`
}

// ProfessionalResponse ответ с данными специалиста
type ProfessionalResponse struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Specialties []string `json:"specialties"`
}

// CatalogResponse ответ с полным каталогом
type CatalogResponse struct {
	Services      []ServiceResponse      `json:"services"`
	Professionals []ProfessionalResponse `json:"professionals"`
}

// FromDomainCatalog конвертирует domain модели в DTO
func FromDomainCatalog(services []*domain.Service, professionals []*domain.Professional) *CatalogResponse {
	resp := &CatalogResponse{
		Services:      make([]ServiceResponse, len(services)),
		Professionals: make([]ProfessionalResponse, len(professionals)),
	}

	for i, s := range services {
		resp.Services[i] = ServiceResponse{
			ID:              s.ID,
			Name:            s.Name,
			Description:     s.Description,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
		}
	}

	for i, p := range professionals {
		resp.Professionals[i] = ProfessionalResponse{
			ID:          p.ID,
			Name:        p.Name,
			Specialties: p.Specialties,
		}
	}

	return resp
}
