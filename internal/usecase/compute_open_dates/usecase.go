package compute_open_dates

import (
	"context"
	"fmt"

	"github.com/petsas/appointment-service/pkg/types"
)

// UseCase use case расчета свободных дат для записи.
// Сверяет список открытых администратором дат с занятостью специалиста:
// дата, на которую у специалиста уже есть активная запись, выпадает из выдачи.
type UseCase struct {
	availabilityRepo AvailabilityRepository
	bookingRepo      BookingRepository
	logger           Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	availabilityRepo AvailabilityRepository,
	bookingRepo BookingRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		availabilityRepo: availabilityRepo,
		bookingRepo:      bookingRepo,
		logger:           logger,
	}
}

// Execute выполняет расчет свободных дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("ComputeOpenDates: professional=%q, start=%s, end=%s",
		req.ProfessionalID, req.StartDate, req.EndDate)

	// 1. Валидация периода
	if err := validateRange(req); err != nil {
		uc.logger.Warn("ComputeOpenDates: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем все открытые даты
	openDates, err := uc.availabilityRepo.ListOpenDates(ctx)
	if err != nil {
		uc.logger.Error("ComputeOpenDates: failed to list open dates: %v", err)
		return nil, fmt.Errorf("%w: failed to list open dates: %v", ErrInternal, err)
	}

	// 3. Фильтруем по периоду, если он задан
	openDates = filterRange(openDates, req.StartDate, req.EndDate)

	// 4. Без специалиста занятость не учитывается
	if req.ProfessionalID == "" {
		uc.logger.Info("ComputeOpenDates: %d open dates, no professional filter", len(openDates))
		return &Response{Dates: openDates}, nil
	}

	// 5. Вычитаем даты с активными записями специалиста.
	// Отмененные записи дату не занимают.
	bookedDates, err := uc.bookingRepo.ListActiveDatesByProfessional(ctx, req.ProfessionalID)
	if err != nil {
		uc.logger.Error("ComputeOpenDates: failed to list booked dates for professional=%s: %v",
			req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to list booked dates: %v", ErrInternal, err)
	}

	booked := make(map[types.DateString]struct{}, len(bookedDates))
	for _, d := range bookedDates {
		booked[d] = struct{}{}
	}

	result := make([]types.DateString, 0, len(openDates))
	for _, d := range openDates {
		if _, taken := booked[d]; taken {
			continue
		}
		result = append(result, d)
	}

	uc.logger.Info("ComputeOpenDates: %d of %d dates free for professional=%s",
		len(result), len(openDates), req.ProfessionalID)

	return &Response{Dates: result}, nil
}

// validateRange проверяет корректность периода
func validateRange(req *Request) error {
	if !req.StartDate.IsZero() {
		if err := req.StartDate.Validate(); err != nil {
			return fmt.Errorf("%w: invalid startDate: %v", ErrInvalidInput, err)
		}
	}

	if !req.EndDate.IsZero() {
		if err := req.EndDate.Validate(); err != nil {
			return fmt.Errorf("%w: invalid endDate: %v", ErrInvalidInput, err)
		}
	}

	if !req.StartDate.IsZero() && !req.EndDate.IsZero() && req.EndDate.Before(req.StartDate) {
		return fmt.Errorf("%w: endDate is before startDate", ErrInvalidInput)
	}

	return nil
}

// filterRange оставляет только даты внутри периода (границы включительно)
func filterRange(dates []types.DateString, start, end types.DateString) []types.DateString {
	if start.IsZero() && end.IsZero() {
		return dates
	}

	result := make([]types.DateString, 0, len(dates))
	for _, d := range dates {
		if !start.IsZero() && d.Before(start) {
			continue
		}
		if !end.IsZero() && d.After(end) {
			continue
		}
		result = append(result, d)
	}

	return result
}
