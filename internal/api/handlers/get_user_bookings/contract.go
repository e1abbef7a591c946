package get_user_bookings

import (
	"context"

	"github.com/petsas/appointment-service/internal/service/bookings/models"
)

type BookingsService interface {
	GetUserBookings(ctx context.Context, userID string) (*models.BookingHistoryResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
