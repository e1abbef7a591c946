package submit_booking

import "errors"

var (
	// ErrIncompleteBooking возвращается, когда в запросе не хватает обязательных полей
	ErrIncompleteBooking = errors.New("submit_booking: incomplete booking data")

	// ErrProfessionalNotFound возвращается, когда специалист не найден
	ErrProfessionalNotFound = errors.New("submit_booking: professional not found")

	// ErrServiceNotFound возвращается, когда одна из услуг не найдена
	ErrServiceNotFound = errors.New("submit_booking: service not found")

	// ErrDateInPast возвращается при попытке записаться на прошедшую дату
	ErrDateInPast = errors.New("submit_booking: date is in the past")

	// ErrSlotConflict возвращается, когда специалист уже занят на эту дату
	ErrSlotConflict = errors.New("submit_booking: slot already taken")

	// ErrAvailabilityCheck возвращается при сбое проверки занятости специалиста
	ErrAvailabilityCheck = errors.New("submit_booking: availability check failed")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("submit_booking: internal error")
)
