package compute_open_dates

import (
	"context"

	"github.com/petsas/appointment-service/pkg/types"
)

// AvailabilityRepository интерфейс репозитория открытых дат
type AvailabilityRepository interface {
	ListOpenDates(ctx context.Context) ([]types.DateString, error)
}

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	ListActiveDatesByProfessional(ctx context.Context, professionalID string) ([]types.DateString, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
