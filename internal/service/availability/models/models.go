package models

import (
	"github.com/petsas/appointment-service/pkg/types"
)

// Request модели

// SaveOpenDatesRequest запрос администратора на сохранение открытых дат.
// Даты задаются либо явным списком, либо правилом: период + дни недели
// минус даты-исключения (праздники).
type SaveOpenDatesRequest struct {
	Dates        []types.DateString `json:"dates,omitempty"`        // Явный список дат
	StartDate    types.DateString   `json:"startDate,omitempty"`    // Начало периода
	EndDate      types.DateString   `json:"endDate,omitempty"`      // Конец периода
	Weekdays     []int              `json:"weekdays,omitempty"`     // Дни недели (0 = воскресенье); пусто — Пн-Пт
	ExcludeDates []types.DateString `json:"excludeDates,omitempty"` // Исключения (праздники)
}

// Response модели

// OpenDatesResponse ответ со списком открытых дат
type OpenDatesResponse struct {
	Dates []string `json:"dates"`
}

// FromDateStrings конвертирует даты в DTO
func FromDateStrings(dates []types.DateString) *OpenDatesResponse {
	resp := &OpenDatesResponse{
		Dates: make([]string, len(dates)),
	}
	for i, d := range dates {
		resp.Dates[i] = d.String()
	}
	return resp
}
