package schedule

import (
	"context"

	"github.com/petsas/appointment-service/internal/domain"
)

// HoursRepository интерфейс репозитория рабочих часов
type HoursRepository interface {
	ListByProfessional(ctx context.Context, professionalID string) ([]*domain.WorkingHours, error)
	ReplaceForProfessional(ctx context.Context, professionalID string, intervals []*domain.WorkingHours) error
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetProfessionalByID(ctx context.Context, id string) (*domain.Professional, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
