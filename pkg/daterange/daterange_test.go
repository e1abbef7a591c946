package daterange

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petsas/appointment-service/pkg/types"
)

func TestGenerateWeekdaysInRange(t *testing.T) {
	tests := []struct {
		name     string
		start    types.DateString
		end      types.DateString
		weekdays []time.Weekday
		want     []types.DateString
	}{
		{
			// 2025-01-01 is a Wednesday, 2025-01-07 a Tuesday
			name:  "first january week with default weekdays",
			start: "2025-01-01",
			end:   "2025-01-07",
			want:  []types.DateString{"2025-01-01", "2025-01-02", "2025-01-03", "2025-01-06", "2025-01-07"},
		},
		{
			name:     "mondays only",
			start:    "2025-06-01",
			end:      "2025-06-30",
			weekdays: []time.Weekday{time.Monday},
			want:     []types.DateString{"2025-06-02", "2025-06-09", "2025-06-16", "2025-06-23", "2025-06-30"},
		},
		{
			name:     "weekend filter",
			start:    "2025-01-03",
			end:      "2025-01-06",
			weekdays: []time.Weekday{time.Saturday, time.Sunday},
			want:     []types.DateString{"2025-01-04", "2025-01-05"},
		},
		{
			name:     "single day matching filter",
			start:    "2025-01-06",
			end:      "2025-01-06",
			weekdays: []time.Weekday{time.Monday},
			want:     []types.DateString{"2025-01-06"},
		},
		{
			name:     "single day not matching filter",
			start:    "2025-01-06",
			end:      "2025-01-06",
			weekdays: []time.Weekday{time.Sunday},
			want:     []types.DateString{},
		},
		{
			name:  "inverted range yields empty without error",
			start: "2025-01-07",
			end:   "2025-01-01",
			want:  []types.DateString{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GenerateWeekdaysInRange(tt.start, tt.end, tt.weekdays)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestGenerateWeekdaysInRange_InvalidDate(t *testing.T) {
	_, err := GenerateWeekdaysInRange("01.01.2025", "2025-01-07", nil)
	require.Error(t, err)

	_, err = GenerateWeekdaysInRange("2025-01-01", "not-a-date", nil)
	require.Error(t, err)
}

// Every returned date must lie in [start, end], its weekday must be in the
// filter, and the order must be strictly increasing with no duplicates.
func TestGenerateWeekdaysInRange_Properties(t *testing.T) {
	start := types.DateString("2025-03-01")
	end := types.DateString("2025-04-15")
	weekdays := []time.Weekday{time.Tuesday, time.Thursday}

	got, err := GenerateWeekdaysInRange(start, end, weekdays)
	require.NoError(t, err)
	require.NotEmpty(t, got)

	for i, d := range got {
		assert.False(t, d.Before(start), "date %s before range start", d)
		assert.False(t, d.After(end), "date %s after range end", d)

		wd, err := d.Weekday()
		require.NoError(t, err)
		assert.Contains(t, weekdays, wd)

		if i > 0 {
			assert.True(t, got[i-1].Before(d), "dates must be strictly increasing")
		}
	}
}

func TestExcludeDates(t *testing.T) {
	dates := []types.DateString{"2025-01-01", "2025-01-02", "2025-01-03", "2025-01-06"}

	t.Run("removes exceptions preserving order", func(t *testing.T) {
		got := ExcludeDates(dates, []types.DateString{"2025-01-01", "2025-01-06"})
		assert.Equal(t, []types.DateString{"2025-01-02", "2025-01-03"}, got)
	})

	t.Run("no exceptions returns copy", func(t *testing.T) {
		got := ExcludeDates(dates, nil)
		assert.Equal(t, dates, got)

		got[0] = "1999-01-01"
		assert.Equal(t, types.DateString("2025-01-01"), dates[0])
	})

	t.Run("exception not present is ignored", func(t *testing.T) {
		got := ExcludeDates(dates, []types.DateString{"2030-12-31"})
		assert.Equal(t, dates, got)
	})

	t.Run("result is disjoint with exceptions and subset of input", func(t *testing.T) {
		exceptions := []types.DateString{"2025-01-02", "2025-01-03"}
		got := ExcludeDates(dates, exceptions)

		for _, d := range got {
			assert.NotContains(t, exceptions, d)
			assert.Contains(t, dates, d)
		}
	})
}

// First working week of January 2025 minus the January 1 holiday.
func TestGenerateAndExclude_HolidayScenario(t *testing.T) {
	dates, err := GenerateWeekdaysInRange("2025-01-01", "2025-01-07", []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
	})
	require.NoError(t, err)

	got := ExcludeDates(dates, []types.DateString{"2025-01-01"})
	assert.Equal(t, []types.DateString{"2025-01-02", "2025-01-03", "2025-01-06", "2025-01-07"}, got)
}
