// Package daterange expands calendar date ranges into concrete open dates.
// All functions are pure and deterministic.
package daterange

import (
	"time"

	"github.com/petsas/appointment-service/pkg/types"
)

// DefaultWeekdays is the weekday filter used when none is given (Mon-Fri).
var DefaultWeekdays = []time.Weekday{
	time.Monday,
	time.Tuesday,
	time.Wednesday,
	time.Thursday,
	time.Friday,
}

// GenerateWeekdaysInRange returns every date in [start, end] whose weekday is
// in weekdays, in chronological order. Both endpoints are inclusive. An empty
// weekdays filter defaults to Mon-Fri. If start is after end the result is
// empty; no error is reported for an inverted range.
func GenerateWeekdaysInRange(start, end types.DateString, weekdays []time.Weekday) ([]types.DateString, error) {
	if err := start.Validate(); err != nil {
		return nil, err
	}
	if err := end.Validate(); err != nil {
		return nil, err
	}

	if len(weekdays) == 0 {
		weekdays = DefaultWeekdays
	}
	wanted := make(map[time.Weekday]bool, len(weekdays))
	for _, wd := range weekdays {
		wanted[wd] = true
	}

	current, _ := start.Time()
	last, _ := end.Time()

	dates := make([]types.DateString, 0)
	for !current.After(last) {
		if wanted[current.Weekday()] {
			dates = append(dates, types.NewDateString(current))
		}
		current = current.AddDate(0, 0, 1)
	}

	return dates, nil
}

// ExcludeDates returns dates with every member of exceptions removed,
// preserving the original order.
func ExcludeDates(dates []types.DateString, exceptions []types.DateString) []types.DateString {
	if len(exceptions) == 0 {
		out := make([]types.DateString, len(dates))
		copy(out, dates)
		return out
	}

	excluded := make(map[types.DateString]bool, len(exceptions))
	for _, d := range exceptions {
		excluded[d] = true
	}

	out := make([]types.DateString, 0, len(dates))
	for _, d := range dates {
		if !excluded[d] {
			out = append(out, d)
		}
	}
	return out
}
