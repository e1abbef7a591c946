package booking

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/petsas/appointment-service/internal/domain"
	"github.com/petsas/appointment-service/pkg/dbmetrics"
	"github.com/petsas/appointment-service/pkg/psqlbuilder"
	"github.com/petsas/appointment-service/pkg/types"
)

// uniqueViolation код ошибки PostgreSQL для нарушения уникального ограничения
const uniqueViolation = "23505"

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новое бронирование.
// Если в контексте передана активная транзакция, использует её.
// Нарушение частичного уникального индекса (professional_id, booking_date)
// возвращается как ErrSlotTaken — это последняя линия защиты от двойного
// бронирования при гонке между проверкой и вставкой.
func (r *Repository) Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	services, err := json.Marshal(booking.ServiceIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - marshal services: %v", ErrEncodeServices, err)
	}

	query, args, err := psqlbuilder.Insert("bookings").
		Columns(
			"user_id",
			"professional_id",
			"booking_date",
			"location",
			"services",
			"status",
		).
		Values(
			booking.UserID,
			booking.ProfessionalID,
			booking.Date,
			booking.Location,
			string(services),
			booking.Status,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&booking.ID,
		&createdAt,
		&updatedAt,
	)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, ErrSlotTaken
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return booking, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBookings().
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// GetByUserID получает все бронирования пользователя,
// отсортированные по дате по возрастанию
func (r *Repository) GetByUserID(ctx context.Context, userID string) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBookings().
		Where(squirrel.Eq{"user_id": userID}).
		OrderBy("booking_date ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// FindByProfessionalAndDate ищет неотменённое бронирование на пару
// (специалист, дата). Используется как проверка перед вставкой.
// Если используется транзакция, строка блокируется через FOR UPDATE.
func (r *Repository) FindByProfessionalAndDate(ctx context.Context, professionalID string, date types.DateString) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := selectBookings().
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		Limit(1)

	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: FindByProfessionalAndDate - build select query: %v", ErrBuildQuery, err)
	}

	booking, err := r.scanBooking(executor.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: FindByProfessionalAndDate - scan booking: %v", ErrScanRow, err)
	}

	return booking, nil
}

// ListActiveDatesByProfessional получает даты всех неотменённых бронирований
// специалиста в хронологическом порядке
func (r *Repository) ListActiveDatesByProfessional(ctx context.Context, professionalID string) ([]types.DateString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("DISTINCT booking_date").
		From("bookings").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("booking_date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveDatesByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListActiveDatesByProfessional - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanDates(rows, "ListActiveDatesByProfessional")
}

// ListBookedDates получает даты всех неотменённых бронирований (для владельца)
func (r *Repository) ListBookedDates(ctx context.Context) ([]types.DateString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("booking_date").
		From("bookings").
		Where(squirrel.NotEq{"status": domain.StatusCancelled}).
		OrderBy("booking_date ASC, id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanDates(rows, "ListBookedDates")
}

// GetByDateAndStatus получает бронирования на конкретную дату с указанным
// статусом. Используется cron-задачей напоминаний.
func (r *Repository) GetByDateAndStatus(ctx context.Context, date types.DateString, status domain.BookingStatus) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := selectBookings().
		Where(squirrel.Eq{"booking_date": date}).
		Where(squirrel.Eq{"status": status}).
		OrderBy("id ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateAndStatus - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetByDateAndStatus - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return r.scanBookings(rows)
}

// Cancel переводит бронирование в статус cancelled
func (r *Repository) Cancel(ctx context.Context, id int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("bookings").
		Set("status", domain.StatusCancelled).
		Set("cancelled_at", squirrel.Expr("NOW()")).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - get rows affected: %v", ErrExecQuery, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

// selectBookings базовый SELECT со всеми колонками бронирования
func selectBookings() squirrel.SelectBuilder {
	return psqlbuilder.Select(
		"id",
		"user_id",
		"professional_id",
		"booking_date",
		"location",
		"services",
		"status",
		"cancelled_at",
		"created_at",
		"updated_at",
	).From("bookings")
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

// scanBooking сканирует одну строку результата в бронирование
func (r *Repository) scanBooking(row rowScanner) (*domain.Booking, error) {
	var booking domain.Booking
	var services string
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&booking.ID,
		&booking.UserID,
		&booking.ProfessionalID,
		&booking.Date,
		&booking.Location,
		&services,
		&booking.Status,
		&booking.CancelledAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal([]byte(services), &booking.ServiceIDs); err != nil {
		// Старые записи могли хранить услуги как произвольный текст
		booking.ServiceIDs = []string{services}
	}

	booking.CreatedAt = createdAt.Time
	booking.UpdatedAt = updatedAt.Time

	return &booking, nil
}

// scanBookings сканирует результаты запроса в слайс бронирований
func (r *Repository) scanBookings(rows *sql.Rows) ([]*domain.Booking, error) {
	bookings := make([]*domain.Booking, 0)

	for rows.Next() {
		booking, err := r.scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scanBookings - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, booking)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: scanBookings - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// scanDates сканирует результаты запроса в слайс дат
func (r *Repository) scanDates(rows *sql.Rows, op string) ([]types.DateString, error) {
	dates := make([]types.DateString, 0)

	for rows.Next() {
		var date types.DateString
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("%w: %s - scan date: %v", ErrScanRow, op, err)
		}
		dates = append(dates, date)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}

	return dates, nil
}
