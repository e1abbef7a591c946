package availability

import (
	"context"
	"fmt"
	"time"

	"github.com/petsas/appointment-service/internal/service/availability/models"
	"github.com/petsas/appointment-service/pkg/daterange"
	"github.com/petsas/appointment-service/pkg/types"
)

// Service сервис для работы с открытыми датами салона
type Service struct {
	availabilityRepo AvailabilityRepository
	txManager        TransactionManager
	logger           Logger
}

// NewService создает новый экземпляр сервиса открытых дат
func NewService(
	availabilityRepo AvailabilityRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		availabilityRepo: availabilityRepo,
		txManager:        txManager,
		logger:           logger,
	}
}

// ListOpenDates получает все открытые даты
func (s *Service) ListOpenDates(ctx context.Context) (*models.OpenDatesResponse, error) {
	dates, err := s.availabilityRepo.ListOpenDates(ctx)
	if err != nil {
		s.logger.Error("ListOpenDates: repository error: %v", err)
		return nil, fmt.Errorf("%w: ListOpenDates - repository error: %v", ErrInternal, err)
	}

	return models.FromDateStrings(dates), nil
}

// SaveOpenDates сохраняет открытые даты администратором.
// Явный список дат имеет приоритет; иначе даты генерируются из правила
// период + дни недели минус исключения. Запись идемпотентна: повторное
// сохранение тех же дат не создает дубликатов.
func (s *Service) SaveOpenDates(ctx context.Context, req *models.SaveOpenDatesRequest) (*models.OpenDatesResponse, error) {
	s.logger.Info("SaveOpenDates: explicit=%d, start=%s, end=%s, weekdays=%v, exclude=%d",
		len(req.Dates), req.StartDate, req.EndDate, req.Weekdays, len(req.ExcludeDates))

	dates, err := s.resolveDates(req)
	if err != nil {
		s.logger.Warn("SaveOpenDates: failed to resolve dates: %v", err)
		return nil, err
	}

	if len(dates) == 0 {
		s.logger.Warn("SaveOpenDates: rule yields no dates")
		return nil, ErrEmptyResult
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.availabilityRepo.UpsertOpenDates(txCtx, dates)
	})
	if err != nil {
		s.logger.Error("SaveOpenDates: repository error: %v", err)
		return nil, fmt.Errorf("%w: SaveOpenDates - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("SaveOpenDates: successfully saved %d dates", len(dates))
	return models.FromDateStrings(dates), nil
}

// resolveDates вычисляет итоговый набор дат из запроса
func (s *Service) resolveDates(req *models.SaveOpenDatesRequest) ([]types.DateString, error) {
	if len(req.Dates) > 0 {
		for _, d := range req.Dates {
			if err := d.Validate(); err != nil {
				return nil, fmt.Errorf("%w: invalid date %q: %v", ErrInvalidInput, d, err)
			}
		}
		// Повтор даты в явном списке не ошибка: берем первое вхождение
		return daterange.ExcludeDates(uniqueDates(req.Dates), req.ExcludeDates), nil
	}

	if req.StartDate.IsZero() || req.EndDate.IsZero() {
		return nil, fmt.Errorf("%w: either dates or a start/end range is required", ErrInvalidInput)
	}

	weekdays := make([]time.Weekday, 0, len(req.Weekdays))
	for _, wd := range req.Weekdays {
		if wd < 0 || wd > 6 {
			return nil, fmt.Errorf("%w: weekday %d out of range", ErrInvalidInput, wd)
		}
		weekdays = append(weekdays, time.Weekday(wd))
	}

	dates, err := daterange.GenerateWeekdaysInRange(req.StartDate, req.EndDate, weekdays)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	return daterange.ExcludeDates(dates, req.ExcludeDates), nil
}

// uniqueDates убирает повторы, сохраняя порядок первых вхождений
func uniqueDates(dates []types.DateString) []types.DateString {
	seen := make(map[types.DateString]struct{}, len(dates))
	result := make([]types.DateString, 0, len(dates))

	for _, d := range dates {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		result = append(result, d)
	}

	return result
}
