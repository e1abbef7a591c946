package submit_booking

import (
	"context"
	"errors"
	"fmt"

	"github.com/petsas/appointment-service/internal/domain"
	bookingRepo "github.com/petsas/appointment-service/internal/infra/storage/booking"
	catalogRepo "github.com/petsas/appointment-service/internal/infra/storage/catalog"
	"github.com/petsas/appointment-service/internal/integrations/notifier"
)

// UseCase use case для создания записи к специалисту
type UseCase struct {
	bookingRepo  BookingRepository
	catalogRepo  CatalogRepository
	profileRepo  ProfileRepository
	notifier     NotifierClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	catalogRepo CatalogRepository,
	profileRepo ProfileRepository,
	notifierClient NotifierClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		catalogRepo:  catalogRepo,
		profileRepo:  profileRepo,
		notifier:     notifierClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case создания записи.
// Использует сериализуемую транзакцию: проверка занятости и вставка выполняются
// атомарно, а частичный уникальный индекс по (professional_id, booking_date)
// закрывает гонку двух конкурентных запросов на один слот.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitBooking: user=%s, professional=%s, date=%s, location=%s, services=%d",
		req.UserID, req.ProfessionalID, req.Date, req.Location, len(req.ServiceIDs))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("SubmitBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Проверяем, что дата не в прошлом
	if err := validateDate(req.Date, uc.timeProvider.Now()); err != nil {
		uc.logger.Warn("SubmitBooking: date validation failed: %v", err)
		return nil, err
	}

	// 3. Проверяем существование специалиста
	professional, err := uc.catalogRepo.GetProfessionalByID(ctx, req.ProfessionalID)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrProfessionalNotFound) {
			uc.logger.Warn("SubmitBooking: professional id=%s not found", req.ProfessionalID)
			return nil, ErrProfessionalNotFound
		}
		uc.logger.Error("SubmitBooking: failed to get professional id=%s: %v", req.ProfessionalID, err)
		return nil, fmt.Errorf("%w: failed to get professional: %v", ErrInternal, err)
	}

	// 4. Проверяем существование всех выбранных услуг
	services, err := uc.catalogRepo.GetServicesByIDs(ctx, req.ServiceIDs)
	if err != nil {
		if errors.Is(err, catalogRepo.ErrServiceNotFound) {
			uc.logger.Warn("SubmitBooking: unknown service in %v", req.ServiceIDs)
			return nil, ErrServiceNotFound
		}
		uc.logger.Error("SubmitBooking: failed to get services: %v", err)
		return nil, fmt.Errorf("%w: failed to get services: %v", ErrInternal, err)
	}

	var result *domain.Booking

	// 5. Выполняем проверку занятости и вставку в сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 5.1. Проверяем, что специалист свободен на эту дату (FOR UPDATE).
		// Отсутствие бронирования — это свободный слот, а не ошибка.
		existing, err := uc.bookingRepo.FindByProfessionalAndDate(txCtx, req.ProfessionalID, req.Date)
		if err != nil && !errors.Is(err, bookingRepo.ErrBookingNotFound) {
			uc.logger.Error("SubmitBooking: availability probe failed for professional=%s date=%s: %v",
				req.ProfessionalID, req.Date, err)
			return fmt.Errorf("%w: %v", ErrAvailabilityCheck, err)
		}

		if existing != nil {
			uc.logger.Warn("SubmitBooking: professional=%s already booked on %s (booking id=%d)",
				req.ProfessionalID, req.Date, existing.ID)
			return ErrSlotConflict
		}

		// 5.2. Создаем запись со статусом pending
		booking := &domain.Booking{
			UserID:         req.UserID,
			ProfessionalID: req.ProfessionalID,
			Date:           req.Date,
			Location:       domain.BookingLocation(req.Location),
			ServiceIDs:     req.ServiceIDs,
			Status:         domain.StatusPending,
		}

		created, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			// Конкурентная вставка успела раньше: уникальный индекс сработал
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				uc.logger.Warn("SubmitBooking: concurrent insert won the slot for professional=%s date=%s",
					req.ProfessionalID, req.Date)
				return ErrSlotConflict
			}
			uc.logger.Error("SubmitBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		result = created
		return nil
	})

	if err != nil {
		return nil, err
	}

	uc.logger.Info("SubmitBooking: successfully created booking id=%d", result.ID)

	// 6. Отправляем уведомление после коммита.
	// Сбой доставки не влияет на результат: запись уже создана.
	uc.dispatchNotification(ctx, result, professional, services)

	return &Response{
		ID:             result.ID,
		UserID:         result.UserID,
		ProfessionalID: result.ProfessionalID,
		Date:           result.Date,
		Location:       string(result.Location),
		ServiceIDs:     result.ServiceIDs,
		Status:         string(result.Status),
		CreatedAt:      result.CreatedAt,
		UpdatedAt:      result.UpdatedAt,
	}, nil
}

// dispatchNotification собирает данные для уведомления и отправляет его в фоне
func (uc *UseCase) dispatchNotification(ctx context.Context, b *domain.Booking, professional *domain.Professional, services []*domain.Service) {
	profile, err := uc.profileRepo.GetByID(ctx, b.UserID)
	if err != nil {
		uc.logger.Error("SubmitBooking: failed to load profile for notification, booking id=%d: %v", b.ID, err)
		return
	}

	serviceNames := make([]string, 0, len(services))
	for _, s := range services {
		serviceNames = append(serviceNames, s.Name)
	}

	uc.notifier.SendBookingConfirmedAsync(&notifier.BookingNotification{
		BookingID:    b.ID,
		CustomerName: profile.FullName,
		Email:        profile.Email,
		Phone:        profile.Phone,
		Date:         b.Date.String(),
		Location:     string(b.Location),
		Professional: professional.Name,
		Services:     serviceNames,
	})
}
