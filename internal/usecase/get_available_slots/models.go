package get_available_slots

import (
	"github.com/petsas/appointment-service/internal/domain"
	"github.com/petsas/appointment-service/pkg/types"
)

// Request модель запроса на получение доступных слотов
type Request struct {
	ProfessionalID string           // ID специалиста
	Date           types.DateString // Дата записи
	ServiceIDs     []string         // Выбранные услуги (определяют длительность слота)
}

// Response модель ответа с доступными слотами
type Response struct {
	Date  types.DateString  // Запрошенная дата
	Slots []domain.TimeSlot // Доступные интервалы, по возрастанию времени начала
}
