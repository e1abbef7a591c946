package get_available_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrServiceNotFound возвращается, когда одна из услуг не найдена
	ErrServiceNotFound = errors.New("get_available_slots: service not found")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_available_slots: internal error")
)
