package compute_open_dates

import (
	"github.com/petsas/appointment-service/pkg/types"
)

// Request модель запроса на расчет свободных дат
type Request struct {
	ProfessionalID string           // ID специалиста; пустая строка — без учета занятости
	StartDate      types.DateString // Начало периода (опционально)
	EndDate        types.DateString // Конец периода (опционально)
}

// Response модель ответа со свободными датами
type Response struct {
	Dates []types.DateString // Открытые даты, отсортированные по возрастанию
}
