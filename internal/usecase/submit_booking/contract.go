package submit_booking

import (
	"context"
	"time"

	"github.com/petsas/appointment-service/internal/domain"
	"github.com/petsas/appointment-service/internal/integrations/notifier"
	"github.com/petsas/appointment-service/pkg/types"
)

// BookingRepository интерфейс репозитория записей
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	FindByProfessionalAndDate(ctx context.Context, professionalID string, date types.DateString) (*domain.Booking, error)
}

// CatalogRepository интерфейс репозитория каталога
type CatalogRepository interface {
	GetServicesByIDs(ctx context.Context, ids []string) ([]*domain.Service, error)
	GetProfessionalByID(ctx context.Context, id string) (*domain.Professional, error)
}

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
}

// NotifierClient интерфейс клиента уведомлений
type NotifierClient interface {
	SendBookingConfirmedAsync(n *notifier.BookingNotification)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
