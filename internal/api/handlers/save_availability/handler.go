package save_availability

import (
	"errors"
	"net/http"

	"github.com/petsas/appointment-service/internal/api/handlers"
	"github.com/petsas/appointment-service/internal/service/availability"
	"github.com/petsas/appointment-service/internal/service/availability/models"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDates       = "некорректный набор дат"
	msgEmptyResult        = "правило не дает ни одной даты"
)

type Handler struct {
	service AvailabilityService
	logger  Logger
}

func NewHandler(service AvailabilityService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.SaveOpenDatesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SaveOpenDates(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, availability.ErrInvalidInput):
			h.logger.Warn("POST /admin/availability - Invalid dates: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDates)

		case errors.Is(err, availability.ErrEmptyResult):
			h.logger.Warn("POST /admin/availability - Rule yields no dates")
			handlers.RespondBadRequest(w, msgEmptyResult)

		default:
			h.logger.Error("POST /admin/availability - Failed to save open dates: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/availability - Saved %d open dates", len(result.Dates))
	handlers.RespondJSON(w, http.StatusOK, result)
}
