package create_booking

import (
	"time"

	submitBooking "github.com/petsas/appointment-service/internal/usecase/submit_booking"
	"github.com/petsas/appointment-service/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	ProfessionalID string   `json:"professionalId"`
	Date           string   `json:"date"` // "2025-06-02"
	Location       string   `json:"location"`
	ServiceIDs     []string `json:"serviceIds"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID             int64    `json:"id"`
	UserID         string   `json:"userId"`
	ProfessionalID string   `json:"professionalId"`
	Date           string   `json:"date"`
	Location       string   `json:"location"`
	ServiceIDs     []string `json:"serviceIds"`
	Status         string   `json:"status"`
	CreatedAt      string   `json:"createdAt"`
	UpdatedAt      string   `json:"updatedAt"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest(userID string) (*submitBooking.Request, error) {
	date, err := types.NewDateStringFromString(r.Date)
	if err != nil {
		return nil, err
	}

	return &submitBooking.Request{
		UserID:         userID,
		ProfessionalID: r.ProfessionalID,
		Date:           date,
		Location:       r.Location,
		ServiceIDs:     r.ServiceIDs,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *submitBooking.Response) *BookingResponse {
	return &BookingResponse{
		ID:             resp.ID,
		UserID:         resp.UserID,
		ProfessionalID: resp.ProfessionalID,
		Date:           resp.Date.String(),
		Location:       resp.Location,
		ServiceIDs:     resp.ServiceIDs,
		Status:         resp.Status,
		CreatedAt:      resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      resp.UpdatedAt.Format(time.RFC3339),
	}
}
