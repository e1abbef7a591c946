package bookings

import (
	"context"
	"errors"
	"fmt"

	bookingRepo "github.com/petsas/appointment-service/internal/infra/storage/booking"
	"github.com/petsas/appointment-service/internal/service/bookings/models"
	"github.com/petsas/appointment-service/pkg/types"
)

// Service сервис для работы с записями
type Service struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса записей
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetByID получает запись по ID.
// Пользователь видит только свою запись, сотрудники салона — любую.
func (s *Service) GetByID(ctx context.Context, id int64, requester models.Requester) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d for user=%s", id, requester.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != requester.UserID && !requester.CanViewAll() {
		s.logger.Warn("GetByID: access denied for user=%s to booking id=%d", requester.UserID, id)
		return nil, ErrAccessDenied
	}

	return models.FromDomainBooking(booking), nil
}

// GetUserBookings получает историю записей пользователя,
// разделенную на предстоящие и прошедшие. Отмененная запись считается прошедшей.
func (s *Service) GetUserBookings(ctx context.Context, userID string) (*models.BookingHistoryResponse, error) {
	s.logger.Info("GetUserBookings: fetching bookings for user=%s", userID)

	bookings, err := s.bookingRepo.GetByUserID(ctx, userID)
	if err != nil {
		s.logger.Error("GetUserBookings: repository error for user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: GetUserBookings - repository error: %v", ErrInternal, err)
	}

	today := types.NewDateString(s.timeProvider.Now())

	s.logger.Info("GetUserBookings: fetched %d bookings for user=%s", len(bookings), userID)
	return models.FromDomainBookingHistory(bookings, today), nil
}

// GetBookedDates получает все занятые даты.
// Доступно только сотрудникам салона.
func (s *Service) GetBookedDates(ctx context.Context, requester models.Requester) (*models.BookedDatesResponse, error) {
	s.logger.Info("GetBookedDates: requested by user=%s role=%s", requester.UserID, requester.Role)

	if !requester.CanViewAll() {
		s.logger.Warn("GetBookedDates: access denied for user=%s", requester.UserID)
		return nil, ErrAccessDenied
	}

	dates, err := s.bookingRepo.ListBookedDates(ctx)
	if err != nil {
		s.logger.Error("GetBookedDates: repository error: %v", err)
		return nil, fmt.Errorf("%w: GetBookedDates - repository error: %v", ErrInternal, err)
	}

	return models.FromDateStrings(dates), nil
}

// Cancel отменяет запись.
// Пользователь может отменить только свою запись, сотрудники салона — любую.
// Запись не удаляется: статус меняется на cancelled, и дата освобождается
// для новых записей.
func (s *Service) Cancel(ctx context.Context, id int64, requester models.Requester) error {
	s.logger.Info("Cancel: cancelling booking id=%d by user=%s", id, requester.UserID)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	if booking.UserID != requester.UserID && !requester.CanViewAll() {
		s.logger.Warn("Cancel: access denied for user=%s to booking id=%d", requester.UserID, id)
		return ErrAccessDenied
	}

	if !booking.CanBeCancelled() {
		s.logger.Warn("Cancel: booking id=%d cannot be cancelled, status=%s", id, booking.Status)
		return ErrCannotCancel
	}

	if err := s.bookingRepo.Cancel(ctx, id); err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("Cancel: booking id=%d not found during cancellation", id)
			return ErrBookingNotFound
		}
		s.logger.Error("Cancel: repository error for booking id=%d: %v", id, err)
		return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Cancel: successfully cancelled booking id=%d", id)
	return nil
}
