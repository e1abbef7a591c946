package wizard

import (
	wizardState "github.com/petsas/appointment-service/internal/wizard"
)

// Request модели

// SetLocationRequest выбор места оказания услуги
type SetLocationRequest struct {
	Location string `json:"location"`
}

// ToggleServiceRequest переключение услуги в выборе
type ToggleServiceRequest struct {
	ServiceID string `json:"serviceId"`
}

// SelectProfessionalRequest выбор специалиста
type SelectProfessionalRequest struct {
	ProfessionalID string `json:"professionalId"`
}

// SelectDateRequest выбор даты
type SelectDateRequest struct {
	Date string `json:"date"`
}

// Response модели

// StateResponse текущее состояние мастера
type StateResponse struct {
	Step           int      `json:"step"`
	StepName       string   `json:"stepName"`
	Location       string   `json:"location,omitempty"`
	ServiceIDs     []string `json:"serviceIds"`
	ProfessionalID string   `json:"professionalId,omitempty"`
	Date           string   `json:"date,omitempty"`
	AvailableDates []string `json:"availableDates"`
}

// FromMachine снимает снимок состояния мастера для ответа
func FromMachine(m *wizardState.Machine) *StateResponse {
	available := m.AvailableDates()
	dates := make([]string, len(available))
	for i, d := range available {
		dates[i] = d.String()
	}

	return &StateResponse{
		Step:           int(m.Step()),
		StepName:       m.Step().String(),
		Location:       string(m.Location()),
		ServiceIDs:     m.ServiceIDs(),
		ProfessionalID: m.ProfessionalID(),
		Date:           m.Date().String(),
		AvailableDates: dates,
	}
}
