package catalog

import (
	"context"

	"github.com/petsas/appointment-service/internal/domain"
)

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	ListServices(ctx context.Context) ([]*domain.Service, error)
	ListProfessionals(ctx context.Context) ([]*domain.Professional, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}
