package accounts

import "errors"

var (
	// ErrEmailTaken возвращается, когда email уже зарегистрирован
	ErrEmailTaken = errors.New("email already taken")

	// ErrInvalidCredentials возвращается при неверном email или пароле
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrProfileNotFound возвращается, когда профиль не найден
	ErrProfileNotFound = errors.New("profile not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
