package save_availability

import (
	"context"

	"github.com/petsas/appointment-service/internal/service/availability/models"
)

type AvailabilityService interface {
	SaveOpenDates(ctx context.Context, req *models.SaveOpenDatesRequest) (*models.OpenDatesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
