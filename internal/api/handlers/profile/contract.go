package profile

import (
	"context"

	"github.com/petsas/appointment-service/internal/service/accounts/models"
)

type AccountsService interface {
	GetProfile(ctx context.Context, userID string) (*models.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.ProfileResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
