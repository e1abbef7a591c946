package compute_open_dates

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petsas/appointment-service/pkg/types"
)

type fakeAvailabilityRepo struct {
	dates []types.DateString
	err   error
}

func (f *fakeAvailabilityRepo) ListOpenDates(_ context.Context) ([]types.DateString, error) {
	return f.dates, f.err
}

type fakeBookingRepo struct {
	booked map[string][]types.DateString
	err    error
	calls  int
}

func (f *fakeBookingRepo) ListActiveDatesByProfessional(_ context.Context, professionalID string) ([]types.DateString, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.booked[professionalID], nil
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestExecute_SubtractsBookedDates(t *testing.T) {
	availability := &fakeAvailabilityRepo{dates: []types.DateString{"2025-06-02", "2025-06-03"}}
	bookings := &fakeBookingRepo{booked: map[string][]types.DateString{
		"prof1": {"2025-06-02"},
	}}
	uc := NewUseCase(availability, bookings, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: "prof1"})
	require.NoError(t, err)
	assert.Equal(t, []types.DateString{"2025-06-03"}, resp.Dates)
}

// Без специалиста возвращается полный набор открытых дат,
// занятость не запрашивается
func TestExecute_NoProfessionalFilter(t *testing.T) {
	availability := &fakeAvailabilityRepo{dates: []types.DateString{"2025-06-02", "2025-06-03"}}
	bookings := &fakeBookingRepo{booked: map[string][]types.DateString{
		"prof1": {"2025-06-02", "2025-06-03"},
	}}
	uc := NewUseCase(availability, bookings, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{})
	require.NoError(t, err)
	assert.Equal(t, []types.DateString{"2025-06-02", "2025-06-03"}, resp.Dates)
	assert.Zero(t, bookings.calls)
}

func TestExecute_RangeFilterInclusive(t *testing.T) {
	availability := &fakeAvailabilityRepo{dates: []types.DateString{
		"2025-06-01", "2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05",
	}}
	uc := NewUseCase(availability, &fakeBookingRepo{}, noopLogger{})

	tests := []struct {
		name string
		req  *Request
		want []types.DateString
	}{
		{
			name: "both bounds",
			req:  &Request{StartDate: "2025-06-02", EndDate: "2025-06-04"},
			want: []types.DateString{"2025-06-02", "2025-06-03", "2025-06-04"},
		},
		{
			name: "start only",
			req:  &Request{StartDate: "2025-06-04"},
			want: []types.DateString{"2025-06-04", "2025-06-05"},
		},
		{
			name: "end only",
			req:  &Request{EndDate: "2025-06-02"},
			want: []types.DateString{"2025-06-01", "2025-06-02"},
		},
		{
			name: "range outside open dates",
			req:  &Request{StartDate: "2025-07-01", EndDate: "2025-07-31"},
			want: []types.DateString{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := uc.Execute(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.want, resp.Dates)
		})
	}
}

func TestExecute_InvalidRange(t *testing.T) {
	uc := NewUseCase(&fakeAvailabilityRepo{}, &fakeBookingRepo{}, noopLogger{})

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "malformed start", req: &Request{StartDate: "01.06.2025"}},
		{name: "malformed end", req: &Request{EndDate: "June 2"}},
		{name: "end before start", req: &Request{StartDate: "2025-06-10", EndDate: "2025-06-01"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_RepositoryErrors(t *testing.T) {
	t.Run("availability repo fails", func(t *testing.T) {
		availability := &fakeAvailabilityRepo{err: errors.New("db down")}
		uc := NewUseCase(availability, &fakeBookingRepo{}, noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{})
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("booking repo fails", func(t *testing.T) {
		availability := &fakeAvailabilityRepo{dates: []types.DateString{"2025-06-02"}}
		bookings := &fakeBookingRepo{err: errors.New("db down")}
		uc := NewUseCase(availability, bookings, noopLogger{})

		_, err := uc.Execute(context.Background(), &Request{ProfessionalID: "prof1"})
		assert.ErrorIs(t, err, ErrInternal)
	})
}

// Результат не пересекается с занятыми датами специалиста
// и целиком входит в набор открытых дат
func TestExecute_ResultDisjointWithBooked(t *testing.T) {
	open := []types.DateString{"2025-06-02", "2025-06-03", "2025-06-04", "2025-06-05"}
	booked := []types.DateString{"2025-06-03", "2025-06-05", "2025-06-20"}

	availability := &fakeAvailabilityRepo{dates: open}
	bookings := &fakeBookingRepo{booked: map[string][]types.DateString{"prof1": booked}}
	uc := NewUseCase(availability, bookings, noopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{ProfessionalID: "prof1"})
	require.NoError(t, err)

	for _, d := range resp.Dates {
		assert.NotContains(t, booked, d)
		assert.Contains(t, open, d)
	}
	assert.Equal(t, []types.DateString{"2025-06-02", "2025-06-04"}, resp.Dates)
}
