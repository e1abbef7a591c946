package models

import (
	"github.com/petsas/appointment-service/internal/domain"
)

// Request модели

// HoursEntry один интервал рабочих часов
type HoursEntry struct {
	Weekday   int    `json:"weekday"`   // День недели (0 = воскресенье)
	StartTime string `json:"startTime"` // Начало работы, "10:00"
	EndTime   string `json:"endTime"`   // Конец работы, "18:00"
}

// ReplaceHoursRequest запрос на полную замену расписания специалиста
type ReplaceHoursRequest struct {
	ProfessionalID string       `json:"professionalId"`
	Entries        []HoursEntry `json:"entries"`
}

// Response модели

// HoursResponse ответ с расписанием специалиста
type HoursResponse struct {
	ProfessionalID string       `json:"professionalId"`
	Entries        []HoursEntry `json:"entries"`
}

// FromDomainHours конвертирует domain модели в DTO
func FromDomainHours(professionalID string, hours []*domain.WorkingHours) *HoursResponse {
	resp := &HoursResponse{
		ProfessionalID: professionalID,
		Entries:        make([]HoursEntry, len(hours)),
	}

	for i, wh := range hours {
		resp.Entries[i] = HoursEntry{
			Weekday:   int(wh.Weekday),
			StartTime: wh.StartTime.String(),
			EndTime:   wh.EndTime.String(),
		}
	}

	return resp
}
