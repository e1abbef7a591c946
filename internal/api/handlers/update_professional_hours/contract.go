package update_professional_hours

import (
	"context"

	"github.com/petsas/appointment-service/internal/service/schedule/models"
)

type ScheduleService interface {
	ReplaceHours(ctx context.Context, req *models.ReplaceHoursRequest) (*models.HoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
