package cancel_booking

import (
	"context"

	"github.com/petsas/appointment-service/internal/service/bookings/models"
)

type BookingsService interface {
	Cancel(ctx context.Context, id int64, requester models.Requester) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
