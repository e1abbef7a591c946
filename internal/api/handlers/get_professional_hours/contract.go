package get_professional_hours

import (
	"context"

	"github.com/petsas/appointment-service/internal/service/schedule/models"
)

type ScheduleService interface {
	GetHours(ctx context.Context, professionalID string) (*models.HoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
