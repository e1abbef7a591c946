package availability

import (
	"context"
	"fmt"

	"github.com/petsas/appointment-service/pkg/dbmetrics"
	"github.com/petsas/appointment-service/pkg/psqlbuilder"
	"github.com/petsas/appointment-service/pkg/types"
)

// Repository репозиторий для работы с открытыми датами магазина
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория доступности
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListOpenDates получает все открытые даты в хронологическом порядке
func (r *Repository) ListOpenDates(ctx context.Context) ([]types.DateString, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("date").
		From("availability").
		OrderBy("date ASC").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: ListOpenDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListOpenDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	dates := make([]types.DateString, 0)
	for rows.Next() {
		var date types.DateString
		if err := rows.Scan(&date); err != nil {
			return nil, fmt.Errorf("%w: ListOpenDates - scan date: %v", ErrScanRow, err)
		}
		dates = append(dates, date)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListOpenDates - rows error: %v", ErrScanRow, err)
	}

	return dates, nil
}

// UpsertOpenDates идемпотентно отмечает даты как открытые.
// Уже существующая дата пропускается, дубликатов не возникает.
// Повторный вызов с тем же набором дат не меняет состав таблицы,
// повтор даты внутри одного вызова безопасен.
func (r *Repository) UpsertOpenDates(ctx context.Context, dates []types.DateString) error {
	if len(dates) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("availability").
		Columns("date")
	for _, date := range dates {
		insertBuilder = insertBuilder.Values(date)
	}
	insertBuilder = insertBuilder.Suffix("ON CONFLICT (date) DO NOTHING")

	query, args, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertOpenDates - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertOpenDates - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}
