package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/petsas/appointment-service/internal/domain"
	"github.com/petsas/appointment-service/pkg/dbmetrics"
	"github.com/petsas/appointment-service/pkg/psqlbuilder"
)

// Код ошибки PostgreSQL для нарушения уникального ограничения
const uniqueViolation = "23505"

// Repository репозиторий для работы с профилями пользователей
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория профилей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create создает новый профиль пользователя.
// Возвращает ErrEmailTaken при конфликте по email.
func (r *Repository) Create(ctx context.Context, p *domain.Profile) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("profiles").
		Columns("id", "full_name", "phone", "email", "password_hash", "role").
		Values(p.ID, p.FullName, p.Phone, p.Email, p.PasswordHash, string(p.Role)).
		Suffix("RETURNING created_at, updated_at").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	err = executor.QueryRowContext(ctx, query, args...).Scan(&p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
			return nil, fmt.Errorf("%w: Create - email %s", ErrEmailTaken, p.Email)
		}
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return p, nil
}

// GetByID получает профиль по идентификатору
func (r *Repository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	return r.getOne(ctx, squirrel.Eq{"id": id}, "GetByID")
}

// GetByEmail получает профиль по email
func (r *Repository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	return r.getOne(ctx, squirrel.Eq{"email": email}, "GetByEmail")
}

// UpdateNamePhone обновляет имя и телефон пользователя
func (r *Repository) UpdateNamePhone(ctx context.Context, id, fullName, phone string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("profiles").
		Set("full_name", fullName).
		Set("phone", phone).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateNamePhone - build update query: %v", ErrBuildQuery, err)
	}

	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: UpdateNamePhone - execute update: %v", ErrExecQuery, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: UpdateNamePhone - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: UpdateNamePhone - id %s", ErrProfileNotFound, id)
	}

	return nil
}

func (r *Repository) getOne(ctx context.Context, where squirrel.Eq, op string) (*domain.Profile, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"full_name",
		"phone",
		"email",
		"password_hash",
		"role",
		"created_at",
		"updated_at",
	).
		From("profiles").
		Where(where).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: %s - build select query: %v", ErrBuildQuery, op, err)
	}

	var p domain.Profile
	var role string

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&p.ID,
		&p.FullName,
		&p.Phone,
		&p.Email,
		&p.PasswordHash,
		&role,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("%w: %s", ErrProfileNotFound, op)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %s - scan row: %v", ErrScanRow, op, err)
	}

	p.Role = domain.Role(role)
	return &p, nil
}
