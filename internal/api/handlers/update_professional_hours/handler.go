package update_professional_hours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/petsas/appointment-service/internal/api/handlers"
	"github.com/petsas/appointment-service/internal/service/schedule"
	"github.com/petsas/appointment-service/internal/service/schedule/models"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgProfessionalNotFound = "специалист не найден"
	msgInvalidTimeRange     = "некорректный интервал рабочих часов"
	msgDuplicateWeekday     = "на один день недели допустим только один интервал"
)

// UpdateHoursRequest HTTP request model
type UpdateHoursRequest struct {
	Entries []models.HoursEntry `json:"entries"`
}

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

// Handle PUT /api/v1/admin/professionals/{id}/hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	professionalID := mux.Vars(r)["id"]

	var req UpdateHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/professionals/{id}/hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq := &models.ReplaceHoursRequest{
		ProfessionalID: professionalID,
		Entries:        req.Entries,
	}

	result, err := h.service.ReplaceHours(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrProfessionalNotFound):
			h.logger.Warn("PUT /admin/professionals/{id}/hours - Professional not found: id=%s", professionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, schedule.ErrInvalidTimeRange), errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PUT /admin/professionals/{id}/hours - Invalid time range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidTimeRange)

		case errors.Is(err, schedule.ErrDuplicateWeekday):
			h.logger.Warn("PUT /admin/professionals/{id}/hours - Duplicate weekday: %v", err)
			handlers.RespondBadRequest(w, msgDuplicateWeekday)

		default:
			h.logger.Error("PUT /admin/professionals/{id}/hours - Failed to replace hours: id=%s, error=%v",
				professionalID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/professionals/{id}/hours - Replaced %d intervals for professional=%s",
		len(result.Entries), professionalID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
