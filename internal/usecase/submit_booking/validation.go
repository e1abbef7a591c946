package submit_booking

import (
	"fmt"
	"time"

	"github.com/petsas/appointment-service/internal/domain"
	"github.com/petsas/appointment-service/pkg/types"
)

// validateRequest валидирует входные данные запроса.
// Запись без пользователя, даты, места, услуг или специалиста считается неполной.
func validateRequest(req *Request) error {
	if req.UserID == "" {
		return fmt.Errorf("%w: userID is required", ErrIncompleteBooking)
	}

	if req.ProfessionalID == "" {
		return fmt.Errorf("%w: professionalID is required", ErrIncompleteBooking)
	}

	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrIncompleteBooking)
	}

	if err := req.Date.Validate(); err != nil {
		return fmt.Errorf("%w: invalid date format: %v", ErrIncompleteBooking, err)
	}

	if req.Location == "" {
		return fmt.Errorf("%w: location is required", ErrIncompleteBooking)
	}

	if !domain.ValidLocation(domain.BookingLocation(req.Location)) {
		return fmt.Errorf("%w: unknown location %q", ErrIncompleteBooking, req.Location)
	}

	if len(req.ServiceIDs) == 0 {
		return fmt.Errorf("%w: at least one service is required", ErrIncompleteBooking)
	}

	if len(req.ServiceIDs) > domain.MaxServicesPerBooking {
		return fmt.Errorf("%w: too many services, max %d", ErrIncompleteBooking, domain.MaxServicesPerBooking)
	}

	return nil
}

// validateDate проверяет, что дата записи не в прошлом
func validateDate(date types.DateString, now time.Time) error {
	today := types.NewDateString(now)

	if date.Before(today) {
		return ErrDateInPast
	}

	return nil
}
