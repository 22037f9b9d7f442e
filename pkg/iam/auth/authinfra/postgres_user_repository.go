package authinfra

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Abraxas-365/campus/internal/database"
	"github.com/Abraxas-365/campus/pkg/errx"
	"github.com/Abraxas-365/campus/pkg/iam/auth"
	"github.com/Abraxas-365/campus/pkg/kernel"
	"github.com/jmoiron/sqlx"
)

type PostgresUserRepository struct {
	db *sqlx.DB
}

func NewPostgresUserRepository(db *sqlx.DB) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (r *PostgresUserRepository) FindByID(ctx context.Context, id kernel.UserID) (*auth.User, error) {
	query := `
		SELECT id, email, user_type, status, password_hash
		FROM users
		WHERE id = $1
	`

	var u auth.User
	if err := r.db.GetContext(ctx, &u, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, auth.ErrUserNotFound().WithDetail("user_id", id.String())
		}
		return nil, errx.Wrap(err, "failed to query user", errx.TypeInternal)
	}
	return &u, nil
}

func (r *PostgresUserRepository) Create(ctx context.Context, u *auth.User) error {
	query := `
		INSERT INTO users (id, email, user_type, status, password_hash)
		VALUES (:id, :email, :user_type, :status, :password_hash)
	`

	if _, err := r.db.NamedExecContext(ctx, query, u); err != nil {
		if database.IsUniqueViolation(err) {
			return auth.ErrDuplicateEmail().WithDetail("email", string(u.Email))
		}
		return errx.Wrap(err, "failed to insert user", errx.TypeInternal)
	}
	return nil
}
