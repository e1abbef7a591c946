package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/petsas/appointment-service/internal/domain"
	bookingRepo "github.com/petsas/appointment-service/internal/infra/storage/booking"
	catalogRepo "github.com/petsas/appointment-service/internal/infra/storage/catalog"
	"github.com/petsas/appointment-service/pkg/types"
)

// UseCase use case расчета доступных временных слотов на дату.
// Рабочий интервал специалиста нарезается на слоты длиной в суммарную
// длительность выбранных услуг. Если специалист на эту дату уже занят
// или в этот день недели не работает, слотов нет.
type UseCase struct {
	hoursRepo   HoursRepository
	bookingRepo BookingRepository
	catalogRepo CatalogRepository
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	hoursRepo HoursRepository,
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		hoursRepo:   hoursRepo,
		bookingRepo: bookingRepo,
		catalogRepo: catalogRepo,
		logger:      logger,
	}
}

// Execute выполняет расчет доступных слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: professional=%s, date=%s, services=%d",
		req.ProfessionalID, req.Date, len(req.ServiceIDs))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Считаем суммарную длительность выбранных услуг
	services, err := uc.catalogRepo.GetServicesByIDs(ctx, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("GetAvailableSlots: unknown service in %v", req.ServiceIDs)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	totalDuration := 0
	for _, s := range services {
		totalDuration += s.DurationMinutes
	}

	// 3. Получаем рабочие часы на день недели запрошенной даты
	weekday, err := req.Date.Weekday()
	if err != nil {
		return nil, fmt.Errorf("%w: invalid date: %v", ErrInvalidInput, err)
	}

	hours, err := uc.hoursRepo.GetForWeekday(ctx, req.ProfessionalID, weekday)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get working hours: %v", err)
		return nil, fmt.Errorf("%w: failed to get working hours: %v", ErrInternal, err)
	}

	// Специалист в этот день недели не работает
	if hours == nil {
		uc.logger.Info("GetAvailableSlots: professional=%s does not work on %s", req.ProfessionalID, weekday)
		return &Response{Date: req.Date, Slots: []domain.TimeSlot{}}, nil
	}

	// 4. Проверяем занятость даты.
	// Отсутствие бронирования — это свободная дата, а не ошибка.
	existing, err := uc.bookingRepo.FindByProfessionalAndDate(ctx, req.ProfessionalID, req.Date)
	if err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
		uc.logger.Error("GetAvailableSlots: availability probe failed: %v", err)
		return nil, fmt.Errorf("%w: availability probe failed: %v", ErrInternal, err)
	}

	if existing != nil {
		uc.logger.Info("GetAvailableSlots: professional=%s already booked on %s", req.ProfessionalID, req.Date)
		return &Response{Date: req.Date, Slots: []domain.TimeSlot{}}, nil
	}

	// 5. Нарезаем рабочий интервал на слоты
	slots, err := sliceSlots(hours.StartTime, hours.EndTime, totalDuration)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to slice slots: %v", err)
		return nil, fmt.Errorf("%w: failed to slice slots: %v", ErrInternal, err)
	}

	uc.logger.Info("GetAvailableSlots: %d slots for professional=%s on %s",
		len(slots), req.ProfessionalID, req.Date)

	return &Response{Date: req.Date, Slots: slots}, nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProfessionalID == "" {
		return fmt.Errorf("%w: professionalID is required", ErrInvalidInput)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: invalid date format: %v", ErrInvalidInput, err)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrInvalidInput)
	}

	return nil
}

// sliceSlots нарезает рабочий интервал на последовательные слоты заданной длительности.
// Последний слот всегда целиком помещается в рабочие часы.
func sliceSlots(start, end types.TimeString, durationMinutes int) ([]domain.TimeSlot, error) {
	if durationMinutes <= 0 {
		return []domain.TimeSlot{}, nil
	}

	slots := make([]domain.TimeSlot, 0)

	cursor := start
	for {
		slotEnd, err := cursor.AddMinutes(durationMinutes)
		if err != nil {
			return nil, err
		}

		// AddMinutes переносит время через полночь; такой слот уже не в рабочих часах
		if slotEnd.IsAfter(end) || !slotEnd.IsAfter(cursor) {
			break
		}

		slots = append(slots, domain.TimeSlot{StartTime: cursor, EndTime: slotEnd})
		cursor = slotEnd
	}

	return slots, nil
}
