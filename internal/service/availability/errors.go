package availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrEmptyResult возвращается, когда правило генерации не дает ни одной даты
	ErrEmptyResult = errors.New("date rule yields no dates")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
