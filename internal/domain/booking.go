package domain

import (
	"time"

	"github.com/petsas/appointment-service/pkg/types"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
)

// BookingLocation represents where the appointment takes place
type BookingLocation string

const (
	LocationYourPlace BookingLocation = "your_place"
	LocationOurPlace  BookingLocation = "our_place"
)

// Booking represents an appointment booked by a customer.
// One professional serves at most one non-cancelled booking per calendar date;
// the database enforces this with a partial unique index on
// (professional_id, booking_date) WHERE status <> 'cancelled'.
type Booking struct {
	ID             int64
	UserID         string // auth subject (uuid)
	ProfessionalID string
	Date           types.DateString
	Location       BookingLocation
	ServiceIDs     []string // ordered selection, persisted as JSON text
	Status         BookingStatus

	CancelledAt *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsActive returns true if the booking still occupies its slot.
// A cancelled booking frees its (professional, date) pair.
func (b *Booking) IsActive() bool {
	return b.Status != StatusCancelled
}

// CanBeCancelled returns true if the booking can still be cancelled
func (b *Booking) CanBeCancelled() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// IsUpcoming returns true if the booking is active and not earlier than today
func (b *Booking) IsUpcoming(today types.DateString) bool {
	return b.IsActive() && !b.Date.Before(today)
}

// ValidStatus reports whether s is a known booking status
func ValidStatus(s BookingStatus) bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// ValidLocation reports whether l is a known booking location
func ValidLocation(l BookingLocation) bool {
	return l == LocationYourPlace || l == LocationOurPlace
}
