package get_booked_dates

import (
	"errors"
	"net/http"

	"github.com/petsas/appointment-service/internal/api/handlers"
	"github.com/petsas/appointment-service/internal/api/middleware"
	"github.com/petsas/appointment-service/internal/service/bookings"
	"github.com/petsas/appointment-service/internal/service/bookings/models"
)

const (
	msgAccessDenied = "доступно только сотрудникам салона"
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

// Handle GET /api/v1/admin/booked-dates
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется авторизация")
		return
	}
	role, _ := middleware.RoleFromContext(r.Context())

	result, err := h.service.GetBookedDates(r.Context(), models.Requester{UserID: userID, Role: role})
	if err != nil {
		if errors.Is(err, bookings.ErrAccessDenied) {
			h.logger.Warn("GET /admin/booked-dates - Access denied: user=%s", userID)
			handlers.RespondForbidden(w, msgAccessDenied)
			return
		}
		h.logger.Error("GET /admin/booked-dates - Failed to get booked dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
