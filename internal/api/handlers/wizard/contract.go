package wizard

import (
	"context"

	computeOpenDates "github.com/petsas/appointment-service/internal/usecase/compute_open_dates"
	submitBooking "github.com/petsas/appointment-service/internal/usecase/submit_booking"
	wizardState "github.com/petsas/appointment-service/internal/wizard"
)

type SessionManager interface {
	WithSession(userID string, fn func(*wizardState.Machine) error) error
	Reset(userID string)
	Drop(userID string)
}

type ComputeOpenDatesUseCase interface {
	Execute(ctx context.Context, req *computeOpenDates.Request) (*computeOpenDates.Response, error)
}

type SubmitBookingUseCase interface {
	Execute(ctx context.Context, req *submitBooking.Request) (*submitBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
