package submit_booking

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
	"github.com/petsas/appointment-service/internal/integrations/notifier"
	"github.com/petsas/appointment-service/pkg/types"
)

type fakeBookingRepo struct {
	existing  *domain.Booking
	findErr   error
	createErr error

	findCalls   int
	createCalls int
	lastCreated *domain.Booking
}

func (f *fakeBookingRepo) FindByProfessionalAndDate(_ context.Context, _ string, _ types.DateString) (*domain.Booking, error) {
	f.findCalls++
	if f.findErr != nil {
		return nil, f.findErr
	}
	// реальный репозиторий сообщает о свободном слоте ошибкой, а не nil
	if f.existing == nil {
		return nil, bookingRepo.ErrBookingNotFound
	}
	return f.existing, nil
}

func (f *fakeBookingRepo) Create(_ context.Context, b *domain.Booking) (*domain.Booking, error) {
	f.createCalls++
	if f.createErr != nil {
		return nil, f.createErr
	}
	created := *b
	created.ID = 42
	created.CreatedAt = time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	created.UpdatedAt = created.CreatedAt
	f.lastCreated = &created
	return &created, nil
}

type fakeCatalogRepo struct {
	professional    *domain.Professional
	professionalErr error
	services        []*domain.Service
	servicesErr     error
}

func (f *fakeCatalogRepo) GetProfessionalByID(_ context.Context, _ string) (*domain.Professional, error) {
	return f.professional, f.professionalErr
}

func (f *fakeCatalogRepo) GetServicesByIDs(_ context.Context, _ []string) ([]*domain.Service, error) {
	return f.services, f.servicesErr
}

type fakeProfileRepo struct {
	profile *domain.Profile
	err     error
}

func (f *fakeProfileRepo) GetByID(_ context.Context, _ string) (*domain.Profile, error) {
	return f.profile, f.err
}

type fakeNotifier struct {
	sent []*notifier.BookingNotification
}

func (f *fakeNotifier) SendBookingConfirmedAsync(n *notifier.BookingNotification) {
	f.sent = append(f.sent, n)
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type fixedTimeProvider struct {
	now time.Time
}

func (p *fixedTimeProvider) Now() time.Time {
	return p.now
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

type testEnv struct {
	uc       *UseCase
	bookings *fakeBookingRepo
	catalog  *fakeCatalogRepo
	profiles *fakeProfileRepo
	notifier *fakeNotifier
	tx       *fakeTxManager
}

func newTestEnv() *testEnv {
	bookings := &fakeBookingRepo{}
	catalog := &fakeCatalogRepo{
		professional: &domain.Professional{ID: "prof1", Name: "Анна"},
		services: []*domain.Service{
			{ID: "service1", Name: "Маникюр", DurationMinutes: 60},
			{ID: "service2", Name: "Педикюр", DurationMinutes: 90},
		},
	}
	profiles := &fakeProfileRepo{
		profile: &domain.Profile{
			ID:       "user-1",
			FullName: "Иван Иванов",
			Email:    "ivan@example.com",
			Phone:    "+79990000000",
		},
	}
	notifierClient := &fakeNotifier{}
	tx := &fakeTxManager{}

	uc := NewUseCase(bookings, catalog, profiles, notifierClient, tx, noopLogger{})
	uc.timeProvider = &fixedTimeProvider{now: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)}

	return &testEnv{
		uc:       uc,
		bookings: bookings,
		catalog:  catalog,
		profiles: profiles,
		notifier: notifierClient,
		tx:       tx,
	}
}

func validRequest() *Request {
	return &Request{
		UserID:         "user-1",
		ProfessionalID: "prof1",
		Date:           "2025-06-02",
		Location:       "our_place",
		ServiceIDs:     []string{"service1", "service2"},
	}
}

func TestExecute_Success(t *testing.T) {
	env := newTestEnv()

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)

	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, "user-1", resp.UserID)
	assert.Equal(t, "prof1", resp.ProfessionalID)
	assert.Equal(t, types.DateString("2025-06-02"), resp.Date)
	assert.Equal(t, "our_place", resp.Location)
	assert.Equal(t, []string{"service1", "service2"}, resp.ServiceIDs)
	assert.Equal(t, string(domain.StatusPending), resp.Status)

	assert.Equal(t, 1, env.tx.calls)
	assert.Equal(t, 1, env.bookings.findCalls)
	assert.Equal(t, 1, env.bookings.createCalls)
	assert.Equal(t, domain.StatusPending, env.bookings.lastCreated.Status)

	require.Len(t, env.notifier.sent, 1)
	n := env.notifier.sent[0]
	assert.Equal(t, int64(42), n.BookingID)
	assert.Equal(t, "Иван Иванов", n.CustomerName)
	assert.Equal(t, "ivan@example.com", n.Email)
	assert.Equal(t, "Анна", n.Professional)
	assert.Equal(t, []string{"Маникюр", "Педикюр"}, n.Services)
}

func TestExecute_IncompleteRequest(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(r *Request)
	}{
		{name: "no user", mutate: func(r *Request) { r.UserID = "" }},
		{name: "no professional", mutate: func(r *Request) { r.ProfessionalID = "" }},
		{name: "no date", mutate: func(r *Request) { r.Date = "" }},
		{name: "malformed date", mutate: func(r *Request) { r.Date = "02.06.2025" }},
		{name: "no location", mutate: func(r *Request) { r.Location = "" }},
		{name: "unknown location", mutate: func(r *Request) { r.Location = "moon" }},
		{name: "no services", mutate: func(r *Request) { r.ServiceIDs = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := newTestEnv()
			req := validRequest()
			tt.mutate(req)

			_, err := env.uc.Execute(context.Background(), req)
			assert.ErrorIs(t, err, ErrIncompleteBooking)

			// до репозиториев дело дойти не должно
			assert.Zero(t, env.bookings.findCalls)
			assert.Zero(t, env.bookings.createCalls)
			assert.Empty(t, env.notifier.sent)
		})
	}
}

func TestExecute_DateInPast(t *testing.T) {
	env := newTestEnv()
	req := validRequest()
	req.Date = "2025-05-31"

	_, err := env.uc.Execute(context.Background(), req)
	assert.ErrorIs(t, err, ErrDateInPast)
	assert.Zero(t, env.bookings.createCalls)
}

// Запись на сегодня допустима
func TestExecute_TodayAllowed(t *testing.T) {
	env := newTestEnv()
	req := validRequest()
	req.Date = "2025-06-01"

	_, err := env.uc.Execute(context.Background(), req)
	require.NoError(t, err)
}

func TestExecute_ProfessionalNotFound(t *testing.T) {
	env := newTestEnv()
	env.catalog.professional = nil
	env.catalog.professionalErr = catalogRepo.ErrProfessionalNotFound

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrProfessionalNotFound)
	assert.Zero(t, env.bookings.createCalls)
}

func TestExecute_ServiceNotFound(t *testing.T) {
	env := newTestEnv()
	env.catalog.services = nil
	env.catalog.servicesErr = catalogRepo.ErrServiceNotFound

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrServiceNotFound)
	assert.Zero(t, env.bookings.createCalls)
}

func TestExecute_SlotAlreadyBooked(t *testing.T) {
	env := newTestEnv()
	env.bookings.existing = &domain.Booking{
		ID:             7,
		ProfessionalID: "prof1",
		Date:           "2025-06-02",
		Status:         domain.StatusConfirmed,
	}

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Zero(t, env.bookings.createCalls)
	assert.Empty(t, env.notifier.sent)
}

// Конкурентная вставка выиграла слот: уникальный индекс вернул ErrSlotTaken
func TestExecute_ConcurrentInsertLosesSlot(t *testing.T) {
	env := newTestEnv()
	env.bookings.createErr = bookingRepo.ErrSlotTaken

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrSlotConflict)
	assert.Empty(t, env.notifier.sent)
}

// Свободный слот репозиторий сообщает через ErrBookingNotFound:
// это не сбой проверки, запись должна создаться
func TestExecute_FreeSlotReportedAsNotFound(t *testing.T) {
	env := newTestEnv()
	env.bookings.findErr = bookingRepo.ErrBookingNotFound

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Equal(t, 1, env.bookings.createCalls)
}

func TestExecute_AvailabilityProbeFails(t *testing.T) {
	env := newTestEnv()
	env.bookings.findErr = errors.New("connection reset")

	_, err := env.uc.Execute(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrAvailabilityCheck)
	assert.Zero(t, env.bookings.createCalls)
}

// Сбой загрузки профиля для уведомления не ломает создание записи
func TestExecute_NotificationFailureIsHarmless(t *testing.T) {
	env := newTestEnv()
	env.profiles.profile = nil
	env.profiles.err = errors.New("profile lookup failed")

	resp, err := env.uc.Execute(context.Background(), validRequest())
	require.NoError(t, err)
	assert.Equal(t, int64(42), resp.ID)
	assert.Empty(t, env.notifier.sent)
}
