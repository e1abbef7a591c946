package types

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// Scan implements sql.Scanner. PostgreSQL DATE columns arrive as time.Time
// through lib/pq; text is accepted as-is.
func (d *DateString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*d = ""
		return nil
	case time.Time:
		*d = NewDateString(v)
		return nil
	case string:
		*d = DateString(v)
		return d.Validate()
	case []byte:
		*d = DateString(v)
		return d.Validate()
	default:
		return fmt.Errorf("types: cannot scan %T into DateString", src)
	}
}

// Value implements driver.Valuer.
func (d DateString) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return string(d), nil
}

// Scan implements sql.Scanner. PostgreSQL TIME columns arrive as HH:MM:SS
// text (or time.Time depending on driver settings); the value is normalized
// to HH:MM.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	case string:
		*t = truncateTime(v)
		return t.Validate()
	case []byte:
		*t = truncateTime(string(v))
		return t.Validate()
	default:
		return fmt.Errorf("types: cannot scan %T into TimeString", src)
	}
}

// Value implements driver.Valuer.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	if err := t.Validate(); err != nil {
		return nil, err
	}
	return string(t), nil
}

func truncateTime(s string) TimeString {
	if len(s) > len(timeLayout) {
		return TimeString(s[:len(timeLayout)])
	}
	return TimeString(s)
}
