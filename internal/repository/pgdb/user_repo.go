package pgdb

import (
	"context"
	"errors"

	"github.com/DRSN-tech/market-backend/internal/domain"
	"github.com/DRSN-tech/market-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/market-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// UserRepo реализует репозиторий пользователей поверх PostgreSQL.
type UserRepo struct {
	pool *pgxpool.Pool
	conv converter.UserConverter
}

func NewUserRepo(pool *pgxpool.Pool, conv converter.UserConverter) *UserRepo {
	return &UserRepo{
		pool: pool,
		conv: conv,
	}
}

const userColumns = `id, email, password_hash, is_admin, created_at`

// Create сохраняет нового пользователя; email должен быть уникален.
func (u *UserRepo) Create(ctx context.Context, user *domain.User) (*domain.User, error) {
	query := `
		INSERT INTO users (email, password_hash)
		VALUES ($1, $2)
		RETURNING ` + userColumns + `;
	`

	model, err := scanUser(u.pool.QueryRow(ctx, query, user.Email, user.PasswordHash))
	if err != nil {
		if postgresDuplicate(err) {
			return nil, e.ErrEmailAlreadyTaken
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(model), nil
}

// GetByEmail возвращает пользователя по email.
func (u *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1;`

	model, err := scanUser(u.pool.QueryRow(ctx, query, email))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrUserNotFound
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(model), nil
}

// GetByID возвращает пользователя по идентификатору.
func (u *UserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1;`

	model, err := scanUser(u.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.ErrUserNotFound
		}

		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return u.conv.ToEntity(model), nil
}

func scanUser(row pgx.Row) (*converter.UserModel, error) {
	var model converter.UserModel
	err := row.Scan(
		&model.ID,
		&model.Email,
		&model.PasswordHash,
		&model.IsAdmin,
		&model.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &model, nil
}
