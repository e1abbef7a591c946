package types

import (
	"errors"
	"fmt"
	"time"
)

// dateLayout is the wire format for calendar dates (ISO 8601).
const dateLayout = "2006-01-02"

// ErrInvalidDateString is returned when a value does not parse as YYYY-MM-DD.
var ErrInvalidDateString = errors.New("types: invalid date string format, expected YYYY-MM-DD")

// DateString is a calendar date in YYYY-MM-DD format.
// Like TimeString it is kept as a plain string: the booking domain works in
// whole store-local days, never instants.
type DateString string

// NewDateString creates a DateString from the date portion of t.
func NewDateString(t time.Time) DateString {
	return DateString(t.Format(dateLayout))
}

// NewDateStringFromString parses and validates s as YYYY-MM-DD.
func NewDateStringFromString(s string) (DateString, error) {
	ds := DateString(s)
	if err := ds.Validate(); err != nil {
		return "", err
	}
	return ds, nil
}

// Validate checks that the value parses as YYYY-MM-DD.
func (d DateString) Validate() error {
	if _, err := time.Parse(dateLayout, string(d)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return nil
}

// IsZero reports whether the value is empty.
func (d DateString) IsZero() bool {
	return d == ""
}

// String returns the YYYY-MM-DD representation.
func (d DateString) String() string {
	return string(d)
}

// Time returns the date as a midnight-UTC time.Time.
func (d DateString) Time() (time.Time, error) {
	t, err := time.Parse(dateLayout, string(d))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDateString, string(d))
	}
	return t, nil
}

// Weekday returns the day of week, Sunday = 0.
func (d DateString) Weekday() (time.Weekday, error) {
	t, err := d.Time()
	if err != nil {
		return 0, err
	}
	return t.Weekday(), nil
}

// AddDays returns the date n days later (or earlier for negative n).
func (d DateString) AddDays(n int) (DateString, error) {
	t, err := d.Time()
	if err != nil {
		return "", err
	}
	return NewDateString(t.AddDate(0, 0, n)), nil
}

// Before reports whether d is strictly earlier than other.
// YYYY-MM-DD strings compare correctly lexicographically.
func (d DateString) Before(other DateString) bool {
	return string(d) < string(other)
}

// After reports whether d is strictly later than other.
func (d DateString) After(other DateString) bool {
	return string(d) > string(other)
}
