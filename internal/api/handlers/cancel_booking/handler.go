package cancel_booking

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
	msgCannotCancel    = "запись уже отменена"
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

// Handle POST /api/v1/bookings/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется авторизация")
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())

	id, err := strconv.ParseInt(mux.Vars(r)["id"], 10, 64)
	if err != nil {
		h.logger.Warn("POST /bookings/{id}/cancel - Invalid id: %v", err)
		handlers.RespondBadRequest(w, msgInvalidID)
		return
	}

	requester := models.Requester{UserID: userID, Role: role}

	if err := h.service.Cancel(r.Context(), id, requester); err != nil {
		switch {
		case errors.Is(err, bookings.ErrBookingNotFound):
			h.logger.Warn("POST /bookings/{id}/cancel - Booking not found: id=%d", id)
			handlers.RespondNotFound(w, msgBookingNotFound)

		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("POST /bookings/{id}/cancel - Access denied: id=%d, user=%s", id, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, bookings.ErrCannotCancel):
			h.logger.Warn("POST /bookings/{id}/cancel - Cannot cancel: id=%d", id)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		default:
			h.logger.Error("POST /bookings/{id}/cancel - Failed to cancel booking id=%d: %v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings/{id}/cancel - Booking cancelled: id=%d, user=%s", id, userID)
	handlers.RespondJSON(w, http.StatusNoContent, nil)
}
