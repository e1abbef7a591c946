package get_booking

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/petsas/appointment-service/internal/api/handlers"
	"github.com/petsas/appointment-service/internal/api/middleware"
	"github.com/petsas/appointment-service/internal/service/bookings"
	"github.com/petsas/appointment-service/internal/service/bookings/models"
)

const (
	msgInvalidID       = "некорректный идентификатор записи"
	msgBookingNotFound = "запись не найдена"
	msgAccessDenied    = "нет доступа к этой записи"
)

type Handler struct {
	service BookingsService
	logger  Logger
}

func NewHandler(service BookingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется авторизация")
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /bookings/{id} - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	requester := models.Requester{UserID: userID, Role: role}

	result, err := h.service.GetByID(r.Context(), id, requester)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("GET /bookings/{id} - Booking not found: id=%d", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id} - Access denied: id=%d, user=%s", id, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		default:
			h.logger.Error("GET /bookings/{id} - Failed to get booking id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
