package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petsas/appointment-service/internal/domain"
	bookingRepo "github.com/petsas/appointment-service/internal/infra/storage/booking"
	"github.com/petsas/appointment-service/internal/service/bookings/models"
	"github.com/petsas/appointment-service/pkg/types"
)

type fakeBookingRepo struct {
	bookings map[int64]*domain.Booking

	listDates []types.DateString
	listErr   error

	cancelErr   error
	cancelCalls int
	cancelledID int64
}

func newFakeBookingRepo(bookings ...*domain.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: make(map[int64]*domain.Booking)}
	for _, b := range bookings {
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) GetByID(_ context.Context, id int64) (*domain.Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return b, nil
}

func (f *fakeBookingRepo) GetByUserID(_ context.Context, userID string) ([]*domain.Booking, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	result := make([]*domain.Booking, 0)
	for _, b := range f.bookings {
		if b.UserID == userID {
			result = append(result, b)
		}
	}
	return result, nil
}

func (f *fakeBookingRepo) ListBookedDates(_ context.Context) ([]types.DateString, error) {
	return f.listDates, f.listErr
}

func (f *fakeBookingRepo) Cancel(_ context.Context, id int64) error {
	f.cancelCalls++
	f.cancelledID = id
	return f.cancelErr
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:             42,
		UserID:         "user-1",
		ProfessionalID: "prof1",
		Date:           "2025-06-02",
		Location:       domain.LocationOurPlace,
		ServiceIDs:     []string{"service1"},
		Status:         domain.StatusPending,
	}
}

func TestGetByID_Owner(t *testing.T) {
	svc := NewService(newFakeBookingRepo(pendingBooking()), noopLogger{})

	resp, err := svc.GetByID(context.Background(), 42, models.Requester{UserID: "user-1", Role: domain.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "2025-06-02", resp.Date)
	assert.Nil(t, resp.CancelledAt)
}

// Чужую запись обычный пользователь не видит, сотрудник салона видит любую
func TestGetByID_Access(t *testing.T) {
	svc := NewService(newFakeBookingRepo(pendingBooking()), noopLogger{})

	_, err := svc.GetByID(context.Background(), 42, models.Requester{UserID: "user-2", Role: domain.RoleUser})
	assert.ErrorIs(t, err, ErrAccessDenied)

	for _, role := range []domain.Role{domain.RoleAdmin, domain.RoleOwner} {
		resp, err := svc.GetByID(context.Background(), 42, models.Requester{UserID: "staff-1", Role: role})
		require.NoError(t, err)
		assert.Equal(t, int64(42), resp.ID)
	}
}

func TestGetByID_NotFound(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), noopLogger{})

	_, err := svc.GetByID(context.Background(), 99, models.Requester{UserID: "user-1", Role: domain.RoleUser})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetByID_CancelledAtFormat(t *testing.T) {
	cancelled := pendingBooking()
	cancelled.Status = domain.StatusCancelled
	cancelledAt := time.Date(2025, 6, 1, 12, 30, 0, 0, time.UTC)
	cancelled.CancelledAt = &cancelledAt

	svc := NewService(newFakeBookingRepo(cancelled), noopLogger{})

	resp, err := svc.GetByID(context.Background(), 42, models.Requester{UserID: "user-1", Role: domain.RoleUser})
	require.NoError(t, err)
	require.NotNil(t, resp.CancelledAt)
	assert.Equal(t, "2025-06-01T12:30:00Z", *resp.CancelledAt)
}

func TestGetUserBookings_SplitsUpcomingAndPast(t *testing.T) {
	upcoming := pendingBooking()

	past := pendingBooking()
	past.ID = 43
	past.Date = "2025-05-20"

	cancelled := pendingBooking()
	cancelled.ID = 44
	cancelled.Date = "2025-06-10"
	cancelled.Status = domain.StatusCancelled

	foreign := pendingBooking()
	foreign.ID = 45
	foreign.UserID = "user-2"

	svc := NewService(newFakeBookingRepo(upcoming, past, cancelled, foreign), noopLogger{})
	svc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	resp, err := svc.GetUserBookings(context.Background(), "user-1")
	require.NoError(t, err)

	require.Len(t, resp.Upcoming, 1)
	assert.Equal(t, int64(42), resp.Upcoming[0].ID)

	// отмененная запись на будущую дату тоже прошедшая
	require.Len(t, resp.Past, 2)
	pastIDs := []int64{resp.Past[0].ID, resp.Past[1].ID}
	assert.ElementsMatch(t, []int64{43, 44}, pastIDs)
}

func TestGetUserBookings_Empty(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), noopLogger{})

	resp, err := svc.GetUserBookings(context.Background(), "user-1")
	require.NoError(t, err)
	assert.Empty(t, resp.Upcoming)
	assert.Empty(t, resp.Past)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

func TestGetBookedDates(t *testing.T) {
	repo := newFakeBookingRepo()
	repo.listDates = []types.DateString{"2025-06-02", "2025-06-03"}
	svc := NewService(repo, noopLogger{})

	resp, err := svc.GetBookedDates(context.Background(), models.Requester{UserID: "staff-1", Role: domain.RoleAdmin})
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-06-02", "2025-06-03"}, resp.Dates)

	_, err = svc.GetBookedDates(context.Background(), models.Requester{UserID: "user-1", Role: domain.RoleUser})
	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestCancel_Owner(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking())
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), 42, models.Requester{UserID: "user-1", Role: domain.RoleUser})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.cancelCalls)
	assert.Equal(t, int64(42), repo.cancelledID)
}

func TestCancel_AccessDenied(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking())
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), 42, models.Requester{UserID: "user-2", Role: domain.RoleUser})
	assert.ErrorIs(t, err, ErrAccessDenied)
	assert.Zero(t, repo.cancelCalls)
}

func TestCancel_AdminCancelsAnyBooking(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking())
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), 42, models.Requester{UserID: "staff-1", Role: domain.RoleOwner})
	require.NoError(t, err)
	assert.Equal(t, 1, repo.cancelCalls)
}

// Повторная отмена невозможна
func TestCancel_AlreadyCancelled(t *testing.T) {
	cancelled := pendingBooking()
	cancelled.Status = domain.StatusCancelled

	repo := newFakeBookingRepo(cancelled)
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), 42, models.Requester{UserID: "user-1", Role: domain.RoleUser})
	assert.ErrorIs(t, err, ErrCannotCancel)
	assert.Zero(t, repo.cancelCalls)
}

func TestCancel_NotFound(t *testing.T) {
	svc := NewService(newFakeBookingRepo(), noopLogger{})

	err := svc.Cancel(context.Background(), 99, models.Requester{UserID: "user-1", Role: domain.RoleUser})
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestCancel_RepositoryError(t *testing.T) {
	repo := newFakeBookingRepo(pendingBooking())
	repo.cancelErr = errors.New("db down")
	svc := NewService(repo, noopLogger{})

	err := svc.Cancel(context.Background(), 42, models.Requester{UserID: "user-1", Role: domain.RoleUser})
	assert.ErrorIs(t, err, ErrInternal)
}
