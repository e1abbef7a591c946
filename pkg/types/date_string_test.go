package types

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDateString(t *testing.T) {
	d := NewDateString(time.Date(2025, time.June, 2, 15, 4, 5, 0, time.UTC))
	assert.Equal(t, DateString("2025-06-02"), d)
}

func TestDateString_Validate(t *testing.T) {
	tests := []struct {
		name    string
		value   DateString
		wantErr bool
	}{
		{name: "valid", value: "2025-06-02"},
		{name: "leap day", value: "2024-02-29"},
		{name: "empty", value: "", wantErr: true},
		{name: "wrong layout", value: "02.06.2025", wantErr: true},
		{name: "not a calendar date", value: "2025-02-30", wantErr: true},
		{name: "missing zero padding", value: "2025-6-2", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.value.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestDateString_Weekday(t *testing.T) {
	// 2025-06-01 is a Sunday
	wd, err := DateString("2025-06-01").Weekday()
	require.NoError(t, err)
	assert.Equal(t, time.Sunday, wd)

	wd, err = DateString("2025-06-02").Weekday()
	require.NoError(t, err)
	assert.Equal(t, time.Monday, wd)

	_, err = DateString("garbage").Weekday()
	assert.Error(t, err)
}

func TestDateString_AddDays(t *testing.T) {
	d, err := DateString("2025-01-31").AddDays(1)
	require.NoError(t, err)
	assert.Equal(t, DateString("2025-02-01"), d)

	d, err = DateString("2025-01-01").AddDays(-1)
	require.NoError(t, err)
	assert.Equal(t, DateString("2024-12-31"), d)
}

func TestDateString_Comparisons(t *testing.T) {
	a := DateString("2025-06-01")
	b := DateString("2025-06-02")

	assert.True(t, a.Before(b))
	assert.False(t, b.Before(a))
	assert.True(t, b.After(a))
	assert.False(t, a.After(a))
	assert.False(t, a.Before(a))
}

func TestDateString_IsZero(t *testing.T) {
	assert.True(t, DateString("").IsZero())
	assert.False(t, DateString("2025-06-01").IsZero())
}
