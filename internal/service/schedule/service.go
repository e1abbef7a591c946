package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/petsas/appointment-service/internal/domain"
	catalogRepo "github.com/petsas/appointment-service/internal/infra/storage/catalog"
	"github.com/petsas/appointment-service/internal/service/schedule/models"
	"github.com/petsas/appointment-service/pkg/types"
)

// Service сервис для работы с расписанием специалистов
type Service struct {
	hoursRepo   HoursRepository
	catalogRepo CatalogRepository
	txManager   TransactionManager
	logger      Logger
}

// NewService создает новый экземпляр сервиса расписания
func NewService(
	hoursRepo HoursRepository,
	catalogRepo CatalogRepository,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		hoursRepo:   hoursRepo,
		catalogRepo: catalogRepo,
		txManager:   txManager,
		logger:      logger,
	}
}

// GetHours получает расписание специалиста
func (s *Service) GetHours(ctx context.Context, professionalID string) (*models.HoursResponse, error) {
	s.logger.Info("GetHours: fetching hours for professional=%s", professionalID)

	if _, err := s.catalogRepo.GetProfessionalByID(ctx, professionalID); err != nil {
		if errors.Is(err, catalogRepo.ErrProfessionalNotFound) {
			s.logger.Warn("GetHours: professional id=%s not found", professionalID)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("GetHours: failed to get professional id=%s: %v", professionalID, err)
		return nil, fmt.Errorf("%w: GetHours - catalog error: %v", ErrInternal, err)
	}

	hours, err := s.hoursRepo.ListByProfessional(ctx, professionalID)
	if err != nil {
		s.logger.Error("GetHours: repository error for professional=%s: %v", professionalID, err)
		return nil, fmt.Errorf("%w: GetHours - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainHours(professionalID, hours), nil
}

// ReplaceHours полностью заменяет расписание специалиста.
// Старые интервалы удаляются, новые вставляются одной транзакцией,
// чтобы читатели не увидели наполовину замененное расписание.
func (s *Service) ReplaceHours(ctx context.Context, req *models.ReplaceHoursRequest) (*models.HoursResponse, error) {
	s.logger.Info("ReplaceHours: professional=%s, entries=%d", req.ProfessionalID, len(req.Entries))

	if req.ProfessionalID == "" {
		return nil, fmt.Errorf("%w: professionalID is required", ErrInvalidInput)
	}

	if _, err := s.catalogRepo.GetProfessionalByID(ctx, req.ProfessionalID); err != nil {
		if errors.Is(err, catalogRepo.ErrProfessionalNotFound) {
			s.logger.Warn("ReplaceHours: professional id=%s not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		s.logger.Error("ReplaceHours: failed to get professional id=%s: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: ReplaceHours - catalog error: %v", ErrInternal, err)
	}

	intervals, err := toDomainHours(req)
	if err != nil {
		s.logger.Warn("ReplaceHours: validation failed for professional=%s: %v", req.ProfessionalID, err)
		return nil, err
	}

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		return s.hoursRepo.ReplaceForProfessional(txCtx, req.ProfessionalID, intervals)
	})
	if err != nil {
		s.logger.Error("ReplaceHours: repository error for professional=%s: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: ReplaceHours - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("ReplaceHours: successfully replaced %d intervals for professional=%s",
		len(intervals), req.ProfessionalID)

	return models.FromDomainHours(req.ProfessionalID, intervals), nil
}

// toDomainHours валидирует и конвертирует запрос в domain модели.
// На один день недели допустим только один интервал.
func toDomainHours(req *models.ReplaceHoursRequest) ([]*domain.WorkingHours, error) {
	seen := make(map[int]struct{}, len(req.Entries))
	intervals := make([]*domain.WorkingHours, 0, len(req.Entries))

	for _, e := range req.Entries {
		if e.Weekday < 0 || e.Weekday > 6 {
			return nil, fmt.Errorf("%w: weekday %d out of range", ErrInvalidInput, e.Weekday)
		}

		if _, dup := seen[e.Weekday]; dup {
			return nil, fmt.Errorf("%w: weekday %d", ErrDuplicateWeekday, e.Weekday)
		}
		seen[e.Weekday] = struct{}{}

		start, err := types.NewTimeStringFromString(e.StartTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid startTime %q: %v", ErrInvalidTimeRange, e.StartTime, err)
		}

		end, err := types.NewTimeStringFromString(e.EndTime)
		if err != nil {
			return nil, fmt.Errorf("%w: invalid endTime %q: %v", ErrInvalidTimeRange, e.EndTime, err)
		}

		if !start.IsBefore(end) {
			return nil, fmt.Errorf("%w: start %s is not before end %s", ErrInvalidTimeRange, start, end)
		}

		intervals = append(intervals, &domain.WorkingHours{
			ProfessionalID: req.ProfessionalID,
			Weekday:        time.Weekday(e.Weekday),
			StartTime:      start,
			EndTime:        end,
		})
	}

	return intervals, nil
}
