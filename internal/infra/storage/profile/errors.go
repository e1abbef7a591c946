package profile

import "errors"

// Ошибки репозитория профилей пользователей
var (
	// ErrProfileNotFound профиль не найден
	ErrProfileNotFound = errors.New("profile.repository: profile not found")
	// ErrEmailTaken пользователь с таким email уже зарегистрирован
	ErrEmailTaken = errors.New("profile.repository: email already taken")
	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("profile.repository: failed to build query")
	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("profile.repository: failed to execute query")
	// ErrScanRow ошибка чтения строки результата
	ErrScanRow = errors.New("profile.repository: failed to scan row")
)
