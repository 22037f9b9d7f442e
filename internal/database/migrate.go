package database

import (
	"context"
	_ "embed"

	"github.com/Abraxas-365/campus/pkg/errx"
	"github.com/Abraxas-365/campus/pkg/logx"
	"github.com/jmoiron/sqlx"
)

//go:embed schema.sql
var schema string

// Schema returns the embedded DDL
func Schema() string {
	return schema
}

// Migrate applies the schema in one transaction. Every statement is idempotent.
func Migrate(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return errx.Wrap(err, "failed to begin migration", errx.TypeInternal)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, schema); err != nil {
		return errx.Wrap(err, "failed to apply schema", errx.TypeInternal)
	}

	if err := tx.Commit(); err != nil {
		return errx.Wrap(err, "failed to commit migration", errx.TypeInternal)
	}

	logx.Info("database schema is up to date")
	return nil
}
