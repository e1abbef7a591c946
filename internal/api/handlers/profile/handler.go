package profile

import (
	"errors"
	"net/http"

	"github.com/petsas/appointment-service/internal/api/handlers"
	"github.com/petsas/appointment-service/internal/api/middleware"
	"github.com/petsas/appointment-service/internal/service/accounts"
	"github.com/petsas/appointment-service/internal/service/accounts/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidInput       = "некорректные данные профиля"
	msgProfileNotFound    = "профиль не найден"
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

// HandleGet GET /api/v1/profile
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется авторизация")
		return
	}

	result, err := h.service.GetProfile(r.Context(), userID)
	if err != nil {
		if errors.Is(err, accounts.ErrProfileNotFound) {
			h.logger.Warn("GET /profile - Profile not found: id=%s", userID)
			handlers.RespondNotFound(w, msgProfileNotFound)
			return
		}
		h.logger.Error("GET /profile - Failed to get profile id=%s: %v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}

// HandleUpdate PUT /api/v1/profile
func (h *Handler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется авторизация")
		return
	}

	var req models.UpdateProfileRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /profile - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateProfile(r.Context(), userID, &req)
	if err != nil {
		switch {
		case errors.Is(err, accounts.ErrInvalidInput):
			h.logger.Warn("PUT /profile - Invalid input for id=%s: %v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, accounts.ErrProfileNotFound):
			h.logger.Warn("PUT /profile - Profile not found: id=%s", userID)
			handlers.RespondNotFound(w, msgProfileNotFound)

		default:
			h.logger.Error("PUT /profile - Failed to update profile id=%s: %v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /profile - Updated profile id=%s", userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
