package catalog

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/petsas/appointment-service/internal/domain"
	"github.com/petsas/appointment-service/pkg/dbmetrics"
	"github.com/petsas/appointment-service/pkg/psqlbuilder"
)

// Repository репозиторий для работы с каталогом услуг и специалистов
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория каталога
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// ListServices получает все услуги каталога
func (r *Repository) ListServices(ctx context.Context) ([]*domain.Service, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "description", "duration_minutes", "price").
		From("services").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListServices - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanServices(rows, "ListServices")
}

// GetServicesByIDs получает услуги по списку идентификаторов.
// Возвращает ErrServiceNotFound, если хотя бы один идентификатор не найден.
func (r *Repository) GetServicesByIDs(ctx context.Context, ids []string) ([]*domain.Service, error) {
	if len(ids) == 0 {
		return []*domain.Service{}, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "description", "duration_minutes", "price").
		From("services").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetServicesByIDs - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	services, err := scanServices(rows, "GetServicesByIDs")
	if err != nil {
		return nil, err
	}

	if len(services) != len(uniqueIDs(ids)) {
		return nil, fmt.Errorf("%w: GetServicesByIDs - requested %d, found %d", ErrServiceNotFound, len(uniqueIDs(ids)), len(services))
	}

	return services, nil
}

// ListProfessionals получает всех специалистов
func (r *Repository) ListProfessionals(ctx context.Context) ([]*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "specialties").
		From("professionals").
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListProfessionals - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListProfessionals - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]*domain.Professional, 0)
	for rows.Next() {
		var p domain.Professional
		if err := rows.Scan(&p.ID, &p.Name, pq.Array(&p.Specialties)); err != nil {
			return nil, fmt.Errorf("%w: ListProfessionals - scan row: %v", ErrScanRow, err)
		}
		result = append(result, &p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListProfessionals - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// GetProfessionalByID получает специалиста по идентификатору
func (r *Repository) GetProfessionalByID(ctx context.Context, id string) (*domain.Professional, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("id", "name", "specialties").
		From("professionals").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetProfessionalByID - build select query: %v", ErrBuildQuery, err)
	}

	var p domain.Professional
	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.ID, &p.Name, pq.Array(&p.Specialties))
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: GetProfessionalByID - id %s", ErrProfessionalNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetProfessionalByID - scan row: %v", ErrScanRow, err)
	}

	return &p, nil
}

func scanServices(rows *sql.Rows, op string) ([]*domain.Service, error) {
	result := make([]*domain.Service, 0)
	for rows.Next() {
		var s domain.Service
		if err := rows.Scan(&s.ID, &s.Name, &s.Description, &s.DurationMinutes, &s.Price); err != nil {
			return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
		}
		result = append(result, &s)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %s - rows error: %v", ErrScanRow, op, err)
	}
	return result, nil
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	result := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}
