package availability

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/petsas/appointment-service/internal/service/availability/models"
	"github.com/petsas/appointment-service/pkg/types"
)

type fakeAvailabilityRepo struct {
	listDates []types.DateString
	listErr   error

	upsertErr   error
	upserted    []types.DateString
	upsertCalls int
}

func (f *fakeAvailabilityRepo) ListOpenDates(_ context.Context) ([]types.DateString, error) {
	return f.listDates, f.listErr
}

func (f *fakeAvailabilityRepo) UpsertOpenDates(_ context.Context, dates []types.DateString) error {
	f.upsertCalls++
	f.upserted = dates
	return f.upsertErr
}

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Do(ctx context.Context, fn func(ctx context.Context) error) error {
	f.calls++
	return fn(ctx)
}

type noopLogger struct{}

func (noopLogger) Info(string, ...interface{})  {}
func (noopLogger) Warn(string, ...interface{})  {}
func (noopLogger) Error(string, ...interface{}) {}

func TestListOpenDates(t *testing.T) {
	repo := &fakeAvailabilityRepo{listDates: []types.DateString{"2025-06-02", "2025-06-03"}}
	svc := NewService(repo, &fakeTxManager{}, noopLogger{})

	resp, err := svc.ListOpenDates(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-06-02", "2025-06-03"}, resp.Dates)
}

func TestListOpenDates_RepositoryError(t *testing.T) {
	repo := &fakeAvailabilityRepo{listErr: errors.New("db down")}
	svc := NewService(repo, &fakeTxManager{}, noopLogger{})

	_, err := svc.ListOpenDates(context.Background())
	assert.ErrorIs(t, err, ErrInternal)
}

func TestSaveOpenDates_ExplicitDates(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	tx := &fakeTxManager{}
	svc := NewService(repo, tx, noopLogger{})

	resp, err := svc.SaveOpenDates(context.Background(), &models.SaveOpenDatesRequest{
		Dates: []types.DateString{"2025-06-02", "2025-06-03"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-06-02", "2025-06-03"}, resp.Dates)
	assert.Equal(t, []types.DateString{"2025-06-02", "2025-06-03"}, repo.upserted)
	assert.Equal(t, 1, tx.calls)
}

// Повтор даты в явном списке схлопывается до одного вхождения:
// в репозиторий не должно уходить два одинаковых значения
func TestSaveOpenDates_DeduplicatesExplicitDates(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := NewService(repo, &fakeTxManager{}, noopLogger{})

	resp, err := svc.SaveOpenDates(context.Background(), &models.SaveOpenDatesRequest{
		Dates: []types.DateString{"2025-06-02", "2025-06-03", "2025-06-02"},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"2025-06-02", "2025-06-03"}, resp.Dates)
	assert.Equal(t, []types.DateString{"2025-06-02", "2025-06-03"}, repo.upserted)
}

// Явный список имеет приоритет над правилом период + дни недели
func TestSaveOpenDates_ExplicitDatesWinOverRule(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := NewService(repo, &fakeTxManager{}, noopLogger{})

	resp, err := svc.SaveOpenDates(context.Background(), &models.SaveOpenDatesRequest{
		Dates:     []types.DateString{"2025-06-02"},
		StartDate: "2025-07-01",
		EndDate:   "2025-07-31",
		Weekdays:  []int{1, 2, 3},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-06-02"}, resp.Dates)
}

func TestSaveOpenDates_GeneratesFromRule(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := NewService(repo, &fakeTxManager{}, noopLogger{})

	// понедельники и вторники первой недели июня 2025
	resp, err := svc.SaveOpenDates(context.Background(), &models.SaveOpenDatesRequest{
		StartDate: "2025-06-01",
		EndDate:   "2025-06-07",
		Weekdays:  []int{1, 2},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-06-02", "2025-06-03"}, resp.Dates)
}

func TestSaveOpenDates_RuleWithExclusions(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := NewService(repo, &fakeTxManager{}, noopLogger{})

	resp, err := svc.SaveOpenDates(context.Background(), &models.SaveOpenDatesRequest{
		StartDate:    "2025-01-01",
		EndDate:      "2025-01-07",
		Weekdays:     []int{1, 2, 3, 4, 5},
		ExcludeDates: []types.DateString{"2025-01-01"},
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"2025-01-02", "2025-01-03", "2025-01-06", "2025-01-07"}, resp.Dates)
}

func TestSaveOpenDates_InvalidInput(t *testing.T) {
	tests := []struct {
		name string
		req  *models.SaveOpenDatesRequest
	}{
		{
			name: "malformed explicit date",
			req:  &models.SaveOpenDatesRequest{Dates: []types.DateString{"02.06.2025"}},
		},
		{
			name: "no dates and no range",
			req:  &models.SaveOpenDatesRequest{},
		},
		{
			name: "range without end",
			req:  &models.SaveOpenDatesRequest{StartDate: "2025-06-01"},
		},
		{
			name: "weekday out of range",
			req: &models.SaveOpenDatesRequest{
				StartDate: "2025-06-01",
				EndDate:   "2025-06-07",
				Weekdays:  []int{7},
			},
		},
		{
			name: "malformed range bound",
			req: &models.SaveOpenDatesRequest{
				StartDate: "garbage",
				EndDate:   "2025-06-07",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeAvailabilityRepo{}
			svc := NewService(repo, &fakeTxManager{}, noopLogger{})

			_, err := svc.SaveOpenDates(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
			assert.Zero(t, repo.upsertCalls)
		})
	}
}

// Правило, не дающее ни одной даты, отклоняется без записи
func TestSaveOpenDates_EmptyResult(t *testing.T) {
	repo := &fakeAvailabilityRepo{}
	svc := NewService(repo, &fakeTxManager{}, noopLogger{})

	// суббота с фильтром по понедельникам
	_, err := svc.SaveOpenDates(context.Background(), &models.SaveOpenDatesRequest{
		StartDate: "2025-06-07",
		EndDate:   "2025-06-07",
		Weekdays:  []int{1},
	})
	assert.ErrorIs(t, err, ErrEmptyResult)
	assert.Zero(t, repo.upsertCalls)
}

func TestSaveOpenDates_RepositoryError(t *testing.T) {
	repo := &fakeAvailabilityRepo{upsertErr: errors.New("db down")}
	svc := NewService(repo, &fakeTxManager{}, noopLogger{})

	_, err := svc.SaveOpenDates(context.Background(), &models.SaveOpenDatesRequest{
		Dates: []types.DateString{"2025-06-02"},
	})
	assert.ErrorIs(t, err, ErrInternal)
}
