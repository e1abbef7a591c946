package wizard

import (
	"errors"
	"net/http"

	"github.com/petsas/appointment-service/internal/api/handlers"
	"github.com/petsas/appointment-service/internal/api/middleware"
	"github.com/petsas/appointment-service/internal/domain"
	computeOpenDates "github.com/petsas/appointment-service/internal/usecase/compute_open_dates"
	submitBooking "github.com/petsas/appointment-service/internal/usecase/submit_booking"
	wizardState "github.com/petsas/appointment-service/internal/wizard"
	"github.com/petsas/appointment-service/pkg/types"
)

const (
	msgUnauthorized       = "требуется авторизация"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidLocation    = "некорректное место оказания услуги"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgDateNotAvailable   = "выбранная дата недоступна"
	msgStepIncomplete     = "заполните текущий шаг перед переходом"
	msgAtFirstStep        = "это первый шаг мастера"
	msgNotAtSummary       = "подтверждение доступно только на финальном шаге"
	msgSlotConflict       = "специалист уже занят на выбранную дату, выберите другую дату или специалиста"
	msgAvailabilityCheck  = "не удалось проверить занятость специалиста, попробуйте позже"
)

type Handler struct {
	sessions  SessionManager
	openDates ComputeOpenDatesUseCase
	submit    SubmitBookingUseCase
	logger    Logger
}

func NewHandler(
	sessions SessionManager,
	openDates ComputeOpenDatesUseCase,
	submit SubmitBookingUseCase,
	logger Logger,
) *Handler {
	return &Handler{
		sessions:  sessions,
		openDates: openDates,
		submit:    submit,
		logger:    logger,
	}
}

// HandleState GET /api/v1/wizard
func (h *Handler) HandleState(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	h.respondWithState(w, userID, func(*wizardState.Machine) error { return nil })
}

// HandleSetLocation POST /api/v1/wizard/location
func (h *Handler) HandleSetLocation(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req SetLocationRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.respondWithState(w, userID, func(m *wizardState.Machine) error {
		return m.SetLocation(domain.BookingLocation(req.Location))
	})
}

// HandleToggleService POST /api/v1/wizard/services
func (h *Handler) HandleToggleService(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req ToggleServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.ServiceID == "" {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	h.respondWithState(w, userID, func(m *wizardState.Machine) error {
		m.ToggleService(req.ServiceID)
		return nil
	})
}

// HandleSelectProfessional POST /api/v1/wizard/professional
// Смена специалиста сбрасывает дату и запускает пересчет доступных дат
func (h *Handler) HandleSelectProfessional(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req SelectProfessionalRequest
	if err := handlers.DecodeJSON(r, &req); err != nil || req.ProfessionalID == "" {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.openDates.Execute(r.Context(), &computeOpenDates.Request{
		ProfessionalID: req.ProfessionalID,
	})
	if err != nil {
		h.logger.Error("POST /wizard/professional - Failed to compute open dates: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.respondWithState(w, userID, func(m *wizardState.Machine) error {
		m.SelectProfessional(req.ProfessionalID)
		m.SetAvailableDates(result.Dates)
		return nil
	})
}

// HandleSelectDate POST /api/v1/wizard/date
func (h *Handler) HandleSelectDate(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req SelectDateRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	date, err := types.NewDateStringFromString(req.Date)
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	h.respondWithState(w, userID, func(m *wizardState.Machine) error {
		return m.SelectDate(date)
	})
}

// HandleNext POST /api/v1/wizard/next
func (h *Handler) HandleNext(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	h.respondWithState(w, userID, func(m *wizardState.Machine) error {
		return m.Next()
	})
}

// HandleBack POST /api/v1/wizard/back
func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	h.respondWithState(w, userID, func(m *wizardState.Machine) error {
		return m.Back()
	})
}

// HandleAbandon DELETE /api/v1/wizard
// Пользователь бросает мастер: сессия удаляется целиком,
// следующее обращение начнет мастер заново с первого шага
func (h *Handler) HandleAbandon(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	h.sessions.Drop(userID)

	h.logger.Info("DELETE /wizard - Session dropped: user=%s", userID)
	w.WriteHeader(http.StatusNoContent)
}

// HandleConfirm POST /api/v1/wizard/confirm
// Собирает данные записи на финальном шаге и передает их в создание записи.
// При успехе мастер сбрасывается на первый шаг.
func (h *Handler) HandleConfirm(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var payload *wizardState.Payload
	err := h.sessions.WithSession(userID, func(m *wizardState.Machine) error {
		p, err := m.BuildPayload()
		if err != nil {
			return err
		}
		payload = p
		return nil
	})
	if err != nil {
		h.logger.Warn("POST /wizard/confirm - Not at summary: user=%s", userID)
		handlers.RespondError(w, http.StatusConflict, msgNotAtSummary)
		return
	}

	result, err := h.submit.Execute(r.Context(), &submitBooking.Request{
		UserID:         userID,
		ProfessionalID: payload.ProfessionalID,
		Date:           payload.Date,
		Location:       payload.Location,
		ServiceIDs:     payload.ServiceIDs,
	})
	if err != nil {
		switch {
		case errors.Is(err, submitBooking.ErrSlotConflict):
			h.logger.Warn("POST /wizard/confirm - Slot conflict: professional=%s, date=%s",
				payload.ProfessionalID, payload.Date)
			handlers.RespondError(w, http.StatusConflict, msgSlotConflict)

		case errors.Is(err, submitBooking.ErrAvailabilityCheck):
			h.logger.Error("POST /wizard/confirm - Availability check failed: %v", err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgAvailabilityCheck)

		case errors.Is(err, submitBooking.ErrIncompleteBooking):
			h.logger.Warn("POST /wizard/confirm - Incomplete booking: user=%s", userID)
			handlers.RespondBadRequest(w, msgStepIncomplete)

		default:
			h.logger.Error("POST /wizard/confirm - Failed to submit booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.sessions.Reset(userID)

	h.logger.Info("POST /wizard/confirm - Booking created: booking_id=%d, user=%s", result.ID, userID)
	handlers.RespondJSON(w, http.StatusCreated, map[string]interface{}{
		"bookingId": result.ID,
		"status":    result.Status,
	})
}

// respondWithState применяет операцию к мастеру и отвечает его новым состоянием
func (h *Handler) respondWithState(w http.ResponseWriter, userID string, op func(*wizardState.Machine) error) {
	var state *StateResponse

	err := h.sessions.WithSession(userID, func(m *wizardState.Machine) error {
		if err := op(m); err != nil {
			return err
		}
		state = FromMachine(m)
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, wizardState.ErrInvalidLocation):
			handlers.RespondBadRequest(w, msgInvalidLocation)
		case errors.Is(err, wizardState.ErrDateNotAvailable):
			handlers.RespondBadRequest(w, msgDateNotAvailable)
		case errors.Is(err, wizardState.ErrStepIncomplete):
			handlers.RespondError(w, http.StatusConflict, msgStepIncomplete)
		case errors.Is(err, wizardState.ErrAtFirstStep):
			handlers.RespondError(w, http.StatusConflict, msgAtFirstStep)
		default:
			h.logger.Error("wizard - Unexpected session error: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, state)
}
