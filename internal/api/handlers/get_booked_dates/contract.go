package get_booked_dates

import (
	"context"

	"github.com/petsas/appointment-service/internal/service/bookings/models"
)

type BookingsService interface {
	GetBookedDates(ctx context.Context, requester models.Requester) (*models.BookedDatesResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
