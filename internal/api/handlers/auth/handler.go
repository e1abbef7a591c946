package auth

import (
	"errors"
	"net/http"

	"github.com/petsas/appointment-service/internal/api/handlers"
	"github.com/petsas/appointment-service/internal/service/accounts"
	"github.com/petsas/appointment-service/internal/service/accounts/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные регистрации"
	msgEmailTaken         = "пользователь с таким email уже зарегистрирован"
	msgInvalidCredentials = "неверный email или пароль"
)

type Handler struct {
	service AccountsService
	logger  Logger
}

func NewHandler(service AccountsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleSignUp POST /api/v1/auth/signup
func (h *Handler) HandleSignUp(w http.ResponseWriter, r *http.Request) {
	var req models.SignUpRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/signup - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SignUp(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrInvalidInput):
			h.logger.Warn("POST /auth/signup - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, accounts.ErrEmailTaken):
			h.logger.Warn("POST /auth/signup - Email taken: %s", req.Email)
			handlers.RespondError(w, http.StatusConflict, msgEmailTaken)

		default:
			h.logger.Error("POST /auth/signup - Failed to sign up: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/signup - Registered profile id=%s", result.Profile.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}

// HandleSignIn POST /api/v1/auth/signin
func (h *Handler) HandleSignIn(w http.ResponseWriter, r *http.Request) {
	var req models.SignInRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /auth/signin - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SignIn(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrInvalidInput):
			h.logger.Warn("POST /auth/signin - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, accounts.ErrInvalidCredentials):
			h.logger.Warn("POST /auth/signin - Invalid credentials for email=%s", req.Email)
			handlers.RespondUnauthorized(w, msgInvalidCredentials)

		default:
			h.logger.Error("POST /auth/signin - Failed to sign in: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /auth/signin - Signed in profile id=%s", result.Profile.ID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
