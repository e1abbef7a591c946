package get_available_dates

import (
	"errors"
	"net/http"

	"github.com/petsas/appointment-service/internal/api/handlers"
	computeOpenDates "github.com/petsas/appointment-service/internal/usecase/compute_open_dates"
	"github.com/petsas/appointment-service/pkg/types"
)

const (
	msgInvalidRange = "некорректный период, ожидается YYYY-MM-DD"
)

// AvailableDatesResponse HTTP response model
type AvailableDatesResponse struct {
	Dates []string `json:"dates"`
}

type Handler struct {
	useCase ComputeOpenDatesUseCase
	logger  Logger
}

func NewHandler(useCase ComputeOpenDatesUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/availability?professionalId=&startDate=&endDate=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := &computeOpenDates.Request{
		ProfessionalID: query.Get("professionalId"),
		StartDate:      types.DateString(query.Get("startDate")),
		EndDate:        types.DateString(query.Get("endDate")),
	}

	result, err := h.useCase.Execute(r.Context(), req)
	if err != nil {
		if errors.Is(err, computeOpenDates.ErrInvalidInput) {
			h.logger.Warn("GET /availability - Invalid range: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRange)
			return
		}
		h.logger.Error("GET /availability - Failed to compute open dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	response := &AvailableDatesResponse{
		Dates: make([]string, len(result.Dates)),
	}
	for i, d := range result.Dates {
		response.Dates[i] = d.String()
	}

	handlers.RespondJSON(w, http.StatusOK, response)
}
