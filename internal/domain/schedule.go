package domain

import (
	"time"

	"github.com/petsas/appointment-service/pkg/types"
)

// WorkingHours represents one professional's working interval on a weekday.
// The simple model keeps at most one interval per (professional, weekday);
// split shifts are not supported.
type WorkingHours struct {
	ID             int64
	ProfessionalID string
	Weekday        time.Weekday // Sunday = 0
	StartTime      types.TimeString
	EndTime        types.TimeString

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Contains reports whether the interval [start, end) fits inside the working hours
func (w *WorkingHours) Contains(start, end types.TimeString) bool {
	return !start.IsBefore(w.StartTime) && !end.IsAfter(w.EndTime)
}

// AvailabilityDate represents a calendar date on which the store accepts
// bookings at all, independent of any professional's load. At most one record
// exists per date; admin re-saves upsert in place.
type AvailabilityDate struct {
	ID        int64
	Date      types.DateString
	CreatedAt time.Time
}

// TimeSlot is a fine-grained bookable interval on a specific date
type TimeSlot struct {
	StartTime types.TimeString
	EndTime   types.TimeString
}
