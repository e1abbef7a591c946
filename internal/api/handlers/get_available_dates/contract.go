package get_available_dates

import (
	"context"

	computeOpenDates "github.com/petsas/appointment-service/internal/usecase/compute_open_dates"
)

type ComputeOpenDatesUseCase interface {
	Execute(ctx context.Context, req *computeOpenDates.Request) (*computeOpenDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
