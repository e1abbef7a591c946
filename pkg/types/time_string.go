package types

import (
	"errors"
	"fmt"
	"time"
)

// timeLayout is the wire format for times of day (HH:MM, 24-hour).
const timeLayout = "15:04"

// ErrInvalidTimeString is returned when a value does not parse as HH:MM.
var ErrInvalidTimeString = errors.New("types: invalid time string format, expected HH:MM")

// TimeString is a time of day in HH:MM format.
// It is stored and transferred as a plain string to avoid timezone ambiguity.
type TimeString string

// NewTimeString creates a TimeString from the clock portion of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeLayout))
}

// NewTimeStringFromString parses and validates s as HH:MM.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks that the value parses as HH:MM.
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the HH:MM representation.
func (t TimeString) String() string {
	return string(t)
}

// Minutes returns the value as minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the time of day m minutes later.
// The result wraps around midnight.
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	parsed, err := time.Parse(timeLayout, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return TimeString(parsed.Add(time.Duration(m) * time.Minute).Format(timeLayout)), nil
}

// IsBefore reports whether t is strictly earlier in the day than other.
// HH:MM strings compare correctly lexicographically.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}
