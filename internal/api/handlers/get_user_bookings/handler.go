package get_user_bookings

import (
	"net/http"

	"github.com/petsas/appointment-service/internal/api/handlers"
	"github.com/petsas/appointment-service/internal/api/middleware"
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

// Handle GET /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется авторизация")
		return
	}

	result, err := h.service.GetUserBookings(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /bookings - Failed to get bookings for user=%s: %v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
