package get_available_slots

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/petsas/appointment-service/internal/api/handlers"
	getAvailableSlots "github.com/petsas/appointment-service/internal/usecase/get_available_slots"
	"github.com/petsas/appointment-service/pkg/types"
)

const (
	msgInvalidRequest  = "некорректные параметры запроса"
	msgServiceNotFound = "услуга не найдена"
)

// SlotResponse один доступный интервал
type SlotResponse struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// SlotsResponse HTTP response model
type SlotsResponse struct {
	Date  string         `json:"date"`
	Slots []SlotResponse `json:"slots"`
}

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/professionals/{id}/slots?date=&serviceIds=service1,service2
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	var serviceIDs []string
	if raw := query.Get("serviceIds"); raw != "" {
		serviceIDs = strings.Split(raw, ",")
	}

	req := &getAvailableSlots.Request{
		ProfessionalID: mux.Vars(r)["id"],
		Date:           types.DateString(query.Get("date")),
		ServiceIDs:     serviceIDs,
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /professionals/{id}/slots - Invalid request: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequest)

		case errors.Is(err, getAvailableSlots.ErrServiceNotFound):
			h.logger.Warn("GET /professionals/{id}/slots - Service not found: %v", err)
			handlers.RespondNotFound(w, msgServiceNotFound)

		default:
			h.logger.Error("GET /professionals/{id}/slots - Failed to get slots: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := &SlotsResponse{
		Date:  result.Date.String(),
		Slots: make([]SlotResponse, len(result.Slots)),
	}
	for i, slot := range result.Slots {
		response.Slots[i] = SlotResponse{
			StartTime: slot.StartTime.String(),
			EndTime:   slot.EndTime.String(),
		}
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
