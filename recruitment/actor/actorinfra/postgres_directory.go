package actorinfra

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Abraxas-365/campus/pkg/errx"
	"github.com/Abraxas-365/campus/pkg/kernel"
	"github.com/jmoiron/sqlx"
)

// PostgresDirectory implements actor.Directory over the jobseekers and companies tables
type PostgresDirectory struct {
	db *sqlx.DB
}

func NewPostgresDirectory(db *sqlx.DB) *PostgresDirectory {
	return &PostgresDirectory{db: db}
}

func (d *PostgresDirectory) JobseekerIDByUser(ctx context.Context, userID kernel.UserID) (kernel.JobseekerID, bool, error) {
	var id string
	err := d.db.GetContext(ctx, &id, `SELECT id FROM jobseekers WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errx.Wrap(err, "failed to look up jobseeker profile", errx.TypeInternal)
	}
	return kernel.JobseekerID(id), true, nil
}

func (d *PostgresDirectory) CompanyIDByUser(ctx context.Context, userID kernel.UserID) (kernel.CompanyID, bool, error) {
	var id string
	err := d.db.GetContext(ctx, &id, `SELECT id FROM companies WHERE user_id = $1`, userID)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, errx.Wrap(err, "failed to look up company record", errx.TypeInternal)
	}
	return kernel.CompanyID(id), true, nil
}
