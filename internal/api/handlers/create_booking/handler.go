package create_booking

import (
	"errors"
	"net/http"

	"github.com/petsas/appointment-service/internal/api/handlers"
	"github.com/petsas/appointment-service/internal/api/middleware"
	submitBooking "github.com/petsas/appointment-service/internal/usecase/submit_booking"
)

const (
	msgInvalidRequestBody   = "некорректное тело запроса"
	msgInvalidDate          = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgIncompleteBooking    = "не заполнены обязательные поля записи"
	msgSlotConflict         = "специалист уже занят на выбранную дату, выберите другую дату или специалиста"
	msgAvailabilityCheck    = "не удалось проверить занятость специалиста, попробуйте позже"
	msgProfessionalNotFound = "специалист не найден"
	msgServiceNotFound      = "услуга не найдена"
	msgDateInPast           = "дата записи уже прошла"
)

type Handler struct {
	useCase SubmitBookingUseCase
	logger  Logger
}

func NewHandler(useCase SubmitBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, "требуется авторизация")
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse date %q: %v", req.Date, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrIncompleteBooking):
			h.logger.Warn("POST /bookings - Incomplete booking: user_id=%s", userID)
			handlers.RespondBadRequest(w, msgIncompleteBooking)

		case errors.Is(err, submitBooking.ErrSlotConflict):
			h.logger.Warn("POST /bookings - Slot conflict: professional=%s, date=%s", req.ProfessionalID, req.Date)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, submitBooking.ErrAvailabilityCheck):
			h.logger.Error("POST /bookings - Availability check failed: professional=%s, date=%s, error=%v",
				req.ProfessionalID, req.Date, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgAvailabilityCheck)

		case errors.Is(err, submitBooking.ErrProfessionalNotFound):
			h.logger.Warn("POST /bookings - Professional not found: professional=%s", req.ProfessionalID)
			handlers.RespondNotFound(w, msgProfessionalNotFound)

		case errors.Is(err, submitBooking.ErrServiceNotFound):
			h.logger.Warn("POST /bookings - Service not found: user_id=%s", userID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, submitBooking.ErrDateInPast):
			h.logger.Warn("POST /bookings - Date in past: date=%s", req.Date)
			handlers.RespondBadRequest(w, msgDateInPast)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%s, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%s", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
