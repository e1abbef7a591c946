package domain

// Business validation constants
const (
	MinServiceDurationMinutes = 15
	MaxServiceDurationMinutes = 480 // 8 hours
	MaxServicesPerBooking     = 10
	MaxFullNameLength         = 200
	MaxPhoneLength            = 32
	MinPasswordLength         = 8
)

// Time format constants
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// ActiveStatuses lists the statuses in which a booking occupies its slot.
// Repositories use it when filtering taken dates.
var ActiveStatuses = []BookingStatus{
	StatusPending,
	StatusConfirmed,
}
