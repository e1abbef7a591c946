package accounts

import (
	"context"
	"time"

	"github.com/petsas/appointment-service/internal/domain"
)

// ProfileRepository интерфейс репозитория профилей
type ProfileRepository interface {
	Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error)
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	UpdateNamePhone(ctx context.Context, id, fullName, phone string) error
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
