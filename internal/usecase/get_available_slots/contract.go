package get_available_slots

import (
	"context"
	"time"

	"github.com/petsas/appointment-service/internal/domain"
	"github.com/petsas/appointment-service/pkg/types"
)

// HoursRepository интерфейс репозитория рабочих часов
type HoursRepository interface {
	GetForWeekday(ctx context.Context, professionalID string, weekday time.Weekday) (*domain.WorkingHours, error)
}

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	FindByProfessionalAndDate(ctx context.Context, professionalID string, date types.DateString) (*domain.Booking, error)
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetServicesByIDs(ctx context.Context, ids []string) ([]*domain.Service, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
