package hours

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/petsas/appointment-service/internal/domain"
	"github.com/petsas/appointment-service/pkg/dbmetrics"
	"github.com/petsas/appointment-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с рабочими часами специалистов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListByProfessional получает рабочие часы специалиста,
// отсортированные по дню недели
func (r *Repository) ListByProfessional(ctx context.Context, professionalID string) ([]*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"professional_id",
		"day_of_week",
		"start_time",
		"end_time",
		"created_at",
		"updated_at",
	).
		From("professional_hours").
		Where(squirrel.Eq{"professional_id": professionalID}).
		OrderBy("day_of_week ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.WorkingHours, 0)
	for rows.Next() {
		var wh domain.WorkingHours
		var weekday int
		var createdAt, updatedAt sql.NullTime

		err := rows.Scan(
			&wh.ID,
			&wh.ProfessionalID,
			&weekday,
			&wh.StartTime,
			&wh.EndTime,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("%w: ListByProfessional - scan row: %v", ErrScanRow, err)
		}

		wh.Weekday = time.Weekday(weekday)
		wh.CreatedAt = createdAt.Time
		wh.UpdatedAt = updatedAt.Time
		result = append(result, &wh)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListByProfessional - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetForWeekday получает рабочий интервал специалиста на конкретный день недели.
// Возвращает nil без ошибки, если специалист в этот день не работает.
func (r *Repository) GetForWeekday(ctx context.Context, professionalID string, weekday time.Weekday) (*domain.WorkingHours, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"professional_id",
		"day_of_week",
		"start_time",
		"end_time",
		"created_at",
		"updated_at",
	).
		From("professional_hours").
		Where(squirrel.Eq{"professional_id": professionalID}).
		Where(squirrel.Eq{"day_of_week": int(weekday)}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetForWeekday - build select query: %v", ErrBuildQuery, err)
	}

	var wh domain.WorkingHours
	var day int
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&wh.ID,
		&wh.ProfessionalID,
		&day,
		&wh.StartTime,
		&wh.EndTime,
		&createdAt,
		&updatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetForWeekday - scan row: %v", ErrScanRow, err)
	}

	wh.Weekday = time.Weekday(day)
	wh.CreatedAt = createdAt.Time
	wh.UpdatedAt = updatedAt.Time

	return &wh, nil
}

// ReplaceForProfessional полностью заменяет расписание специалиста:
// удаляет все его интервалы и вставляет новые одним пакетом.
// Вызывающая сторона отвечает за обёртывание в транзакцию.
func (r *Repository) ReplaceForProfessional(ctx context.Context, professionalID string, intervals []*domain.WorkingHours) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("professional_hours").
		Where(squirrel.Eq{"professional_id": professionalID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForProfessional - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForProfessional - execute delete: %v", ErrExecQuery, err)
	}

	if len(intervals) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("professional_hours").
		Columns("professional_id", "day_of_week", "start_time", "end_time")
	for _, wh := range intervals {
		insertBuilder = insertBuilder.Values(professionalID, int(wh.Weekday), wh.StartTime, wh.EndTime)
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceForProfessional - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceForProfessional - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
