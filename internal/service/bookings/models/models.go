package models

import (
	"time"

	"github.com/petsas/appointment-service/internal/domain"
	"github.com/petsas/appointment-service/pkg/types"
)

// Request модели

// Requester данные пользователя, выполняющего запрос
type Requester struct {
	UserID string      // ID пользователя из токена
	Role   domain.Role // Роль пользователя из токена
}

// CanViewAll сотрудники салона видят все записи
func (r Requester) CanViewAll() bool {
	return r.Role == domain.RoleAdmin || r.Role == domain.RoleOwner
}

// Response модели

// BookingResponse ответ с данными записи
type BookingResponse struct {
	ID             int64    `json:"id"`
	UserID         string   `json:"userId"`
	ProfessionalID string   `json:"professionalId"`
	Date           string   `json:"date"` // "2025-06-02"
	Location       string   `json:"location"`
	ServiceIDs     []string `json:"serviceIds"`
	Status         string   `json:"status"`

	CancelledAt *string `json:"cancelledAt,omitempty"` // ISO 8601

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingHistoryResponse история записей пользователя.
// Отмененные записи всегда попадают в прошедшие.
type BookingHistoryResponse struct {
	Upcoming []BookingResponse `json:"upcoming"`
	Past     []BookingResponse `json:"past"`
}

// BookedDatesResponse ответ со списком занятых дат
type BookedDatesResponse struct {
	Dates []string `json:"dates"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	resp := &BookingResponse{
		ID:             b.ID,
		UserID:         b.UserID,
		ProfessionalID: b.ProfessionalID,
		Date:           b.Date.String(),
		Location:       string(b.Location),
		ServiceIDs:     b.ServiceIDs,
		Status:         string(b.Status),
		CreatedAt:      b.CreatedAt,
		UpdatedAt:      b.UpdatedAt,
	}

	if b.CancelledAt != nil {
		cancelledStr := b.CancelledAt.Format(time.RFC3339)
		resp.CancelledAt = &cancelledStr
	}

	return resp
}

// FromDomainBookingHistory раскладывает записи на предстоящие и прошедшие
// относительно today. Порядок репозитория (по дате по возрастанию) сохраняется.
func FromDomainBookingHistory(bookings []*domain.Booking, today types.DateString) *BookingHistoryResponse {
	resp := &BookingHistoryResponse{
		Upcoming: make([]BookingResponse, 0, len(bookings)),
		Past:     make([]BookingResponse, 0),
	}

	for _, booking := range bookings {
		bookingResp := FromDomainBooking(booking)
		if bookingResp == nil {
			continue
		}

		if booking.IsUpcoming(today) {
			resp.Upcoming = append(resp.Upcoming, *bookingResp)
		} else {
			resp.Past = append(resp.Past, *bookingResp)
		}
	}

	return resp
}

// FromDateStrings конвертирует даты в DTO
func FromDateStrings(dates []types.DateString) *BookedDatesResponse {
	resp := &BookedDatesResponse{
		Dates: make([]string, len(dates)),
	}
	for i, d := range dates {
		resp.Dates[i] = d.String()
	}
	return resp
}
