package get_professional_hours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/petsas/appointment-service/internal/api/handlers"
	"github.com/petsas/appointment-service/internal/service/schedule"
)

const (
	msgProfessionalNotFound = "специалист не найден"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{id}/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID := mux.Vars(r)["id"]

	result, err := h.service.GetHours(r.Context(), professionalID)
	if err != nil {
		if errors.Is(err, schedule.ErrProfessionalNotFound) {
			h.logger.Warn("GET /professionals/{id}/hours - Professional not found: id=%s", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)
			return
		}
		h.logger.Error("GET /professionals/{id}/hours - Failed to get hours: id=%s, error=%v", professionalID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
