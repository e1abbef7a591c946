package schedule

import "errors"

var (
	// ErrProfessionalNotFound возвращается, когда специалист не найден
	ErrProfessionalNotFound = errors.New("professional not found")

	// ErrInvalidTimeRange возвращается при некорректном интервале рабочих часов
	ErrInvalidTimeRange = errors.New("invalid time range")

	// ErrDuplicateWeekday возвращается, когда на один день недели задано несколько интервалов
	ErrDuplicateWeekday = errors.New("duplicate weekday")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
