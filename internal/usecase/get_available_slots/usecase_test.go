package get_available_slots

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petsas/appointment-service/internal/domain"
	bookingRepo "github.com/petsas/appointment-service/internal/infra/storage/booking"
	catalogRepo "github.com/petsas/appointment-service/internal/infra/storage/catalog"
	"github.com/petsas/appointment-service/pkg/types"
)

type fakeHoursRepo struct {
	hours       *domain.WorkingHours
	err         error
	lastWeekday time.Weekday
}

func (f *fakeHoursRepo) GetForWeekday(_ context.Context, _ string, weekday time.Weekday) (*domain.WorkingHours, error) {
	f.lastWeekday = weekday
	return f.hours, f.err
}

type fakeBookingRepo struct {
	existing *domain.Booking
	err      error
}

func (f *fakeBookingRepo) FindByProfessionalAndDate(_ context.Context, _ string, _ types.DateString) (*domain.Booking, error) {
	if f.err != nil {
		return nil, f.err
	}
	// реальный репозиторий сообщает о свободной дате ошибкой, а не nil
	if f.existing == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.existing, nil
}

type fakeCatalogRepo struct {
	services []*domain.Service
	err      error
}

func (f *fakeCatalogRepo) GetServicesByIDs(_ context.Context, _ []string) ([]*domain.Service, error) {
	return f.services, f.err
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type testEnv struct {
	uc       *UseCase
	hours    *fakeHoursRepo
	bookings *fakeBookingRepo
	catalog  *fakeCatalogRepo
}

func newTestEnv() *testEnv {
	hours := &fakeHoursRepo{
		hours: &domain.WorkingHours{
			ProfessionalID: "prof1",
			Weekday:        time.Monday,
			StartTime:      "09:00",
			EndTime:        "18:00",
		},
	}
	bookings := &fakeBookingRepo{}
	catalog := &fakeCatalogRepo{
		services: []*domain.Service{
			{ID: "service1", Name: "Маникюр", DurationMinutes: 60},
			{ID: "service2", Name: "Педикюр", DurationMinutes: 90},
		},
	}

	return &testEnv{
		uc:       NewUseCase(hours, bookings, catalog, noopLogger{}),
		hours:    hours,
		bookings: bookings,
		catalog:  catalog,
	}
}

func validRequest() *Request {
	// 2025-06-02 понедельник
	return &Request{
		ProfessionalID: "prof1",
		Date:           "2025-06-02",
		ServiceIDs:     []string{"service1", "service2"},
	}
}

func TestExecute_SlicesWorkingInterval(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	// 09:00-18:00 нарезается слотами по 150 минут (60 + 90)
	assert.Equal(t, types.DateString("2025-06-02"), resp.Date)
	assert.Equal(t, []domain.TimeSlot{
		{StartTime: "09:00", EndTime: "11:30"},
		{StartTime: "11:30", EndTime: "14:00"},
		{StartTime: "14:00", EndTime: "16:30"},
	}, resp.Slots)

	assert.Equal(t, time.Monday, env.hours.lastWeekday)
}

func TestExecute_SingleServiceFillsExactly(t *testing.T) {
	env := newTestEnv()
	env.catalog.services = []*domain.Service{{ID: "service1", DurationMinutes: 180}}
	env.hours.hours.StartTime = "09:00"
	env.hours.hours.EndTime = "15:00"

	req := validRequest()
	req.ServiceIDs = []string{"service1"}

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, []domain.TimeSlot{
		{StartTime: "09:00", EndTime: "12:00"},
		{StartTime: "12:00", EndTime: "15:00"},
	}, resp.Slots)
}

// Услуги длиннее рабочего интервала: ни одного слота
func TestExecute_DurationExceedsHours(t *testing.T) {
	env := newTestEnv()
	env.catalog.services = []*domain.Service{{ID: "service1", DurationMinutes: 600}}

	req := validRequest()
	req.ServiceIDs = []string{"service1"}

	resp, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

// Специалист в этот день недели не работает
func TestExecute_NoWorkingHours(t *testing.T) {
	env := newTestEnv()
	env.hours.hours = nil

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

// Дата уже занята активной записью
func TestExecute_DateAlreadyBooked(t *testing.T) {
	env := newTestEnv()
	env.bookings.existing = &domain.Booking{
		ID:             7,
		ProfessionalID: "prof1",
		Date:           "2025-06-02",
		Status:         domain.StatusPending,
	}

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

// Свободную дату репозиторий сообщает через ErrBookingNotFound:
// это не сбой, слоты должны вернуться
func TestExecute_FreeDateReportedAsNotFound(t *testing.T) {
	env := newTestEnv()
	env.bookings.err = bookingRepo.ErrBookingNotFound

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Slots)
}

func TestExecute_InvalidInput(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "no professional", mutate: func(r *Request) { r.ProfessionalID = "" }},
		{name: "no date", mutate: func(r *Request) { r.Date = "" }},
		{name: "malformed date", mutate: func(r *Request) { r.Date = "02.06.2025" }},
		{name: "no services", mutate: func(r *Request) { r.ServiceIDs = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			req := validRequest()
			tt.mutate(req)

			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestExecute_ServiceNotFound(t *testing.T) {
	env := newTestEnv()
	env.catalog.services = nil
	env.catalog.err = catalogRepo.ErrServiceNotFound

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
}

func TestExecute_RepositoryErrors(t *testing.T) {
	t.Run("hours repo fails", func(t *testing.T) {
		env := newTestEnv()
		env.hours.hours = nil
		env.hours.err = errors.New("db down")

		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})

	t.Run("booking probe fails", func(t *testing.T) {
		env := newTestEnv()
		env.bookings.err = errors.New("db down")

		_, err := env.uc.Execute(context.Background(), validRequest())
		assert.ErrorIs(t, err, ErrInternal)
	})
}

func TestSliceSlots(t *testing.T) {
	t.Run("zero duration yields no slots", func(t *testing.T) {
		slots, err := sliceSlots("09:00", "18:00", 0)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})

	t.Run("last slot fits exactly", func(t *testing.T) {
		slots, err := sliceSlots("10:00", "12:00", 60)
		require.NoError(t, err)
		assert.Equal(t, []domain.TimeSlot{
			{StartTime: "10:00", EndTime: "11:00"},
			{StartTime: "11:00", EndTime: "12:00"},
		}, slots)
	})

	t.Run("partial tail is dropped", func(t *testing.T) {
		slots, err := sliceSlots("10:00", "11:30", 60)
		require.NoError(t, err)
		assert.Equal(t, []domain.TimeSlot{
			{StartTime: "10:00", EndTime: "11:00"},
		}, slots)
	})

	t.Run("interval touching midnight terminates", func(t *testing.T) {
		slots, err := sliceSlots("22:00", "23:59", 120)
		require.NoError(t, err)
		assert.Empty(t, slots)
	})
}
