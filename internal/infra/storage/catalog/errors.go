package catalog

import "errors"

// Ошибки репозитория каталога услуг и специалистов
var (
	// ErrServiceNotFound услуга не найдена
	ErrServiceNotFound = errors.New("catalog.repository: service not found")
	// ErrProfessionalNotFound специалист не найден
	ErrProfessionalNotFound = errors.New("catalog.repository: professional not found")
	// ErrBuildQuery ошибка построения SQL запроса
	ErrBuildQuery = errors.New("catalog.repository: failed to build query")
	// ErrExecQuery ошибка выполнения SQL запроса
	ErrExecQuery = errors.New("catalog.repository: failed to execute query")
	// ErrScanRow ошибка чтения строки результата
	ErrScanRow = errors.New("catalog.repository: failed to scan row")
)
