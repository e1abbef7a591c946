package availability

import (
	"context"

	"github.com/petsas/appointment-service/pkg/types"
)

// AvailabilityRepository интерфейс репозитория открытых дат
type AvailabilityRepository interface {
	ListOpenDates(ctx context.Context) ([]types.DateString, error)
	UpsertOpenDates(ctx context.Context, dates []types.DateString) error
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
