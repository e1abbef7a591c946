package auth

import (
	"context"

	"github.com/petsas/appointment-service/internal/service/accounts/models"
)

type AccountsService interface {
	SignUp(ctx context.Context, req *models.SignUpRequest) (*models.AuthResponse, error)
	SignIn(ctx context.Context, req *models.SignInRequest) (*models.AuthResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
