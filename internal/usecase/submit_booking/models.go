package submit_booking

import (
	"time"

	"github.com/petsas/appointment-service/pkg/types"
)

// Request модель запроса на создание записи
type Request struct {
	UserID         string           // ID пользователя (UUID профиля)
	ProfessionalID string           // ID специалиста
	Date           types.DateString // Дата записи (например, "2025-06-02")
	Location       string           // Место оказания услуги (your_place / our_place)
	ServiceIDs     []string         // Выбранные услуги
}

// Response модель ответа с созданной записью
type Response struct {
	ID             int64            // ID созданной записи
	UserID         string           // ID пользователя
	ProfessionalID string           // ID специалиста
	Date           types.DateString // Дата записи
	Location       string           // Место оказания услуги
	ServiceIDs     []string         // Выбранные услуги
	Status         string           // Статус записи

	CreatedAt time.Time // Время создания
	UpdatedAt time.Time // Время обновления
}
