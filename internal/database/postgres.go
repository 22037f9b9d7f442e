package database

import (
	"context"
	"errors"
	"time"

	"github.com/Abraxas-365/campus/pkg/errx"
	"github.com/Abraxas-365/campus/pkg/logx"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

const uniqueViolation = "23505"

type PostgresConfig struct {
	DSN             string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	// ConnectTimeout bounds the wait for the server to accept connections
	ConnectTimeout time.Duration
}

// Open connects with backoff until the database answers or ConnectTimeout passes
func Open(ctx context.Context, cfg PostgresConfig) (*sqlx.DB, error) {
	db, err := sqlx.Open("postgres", cfg.DSN)
	if err != nil {
		return nil, errx.Wrap(err, "failed to open postgres", errx.TypeInternal)
	}

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	timeout := cfg.ConnectTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	deadline := time.Now().Add(timeout)
	backoff := 500 * time.Millisecond

	for {
		err := db.PingContext(ctx)
		if err == nil {
			return db, nil
		}
		if time.Now().After(deadline) || ctx.Err() != nil {
			db.Close()
			return nil, errx.Wrap(err, "failed to ping postgres", errx.TypeInternal)
		}

		logx.Warnf("postgres not ready yet: %v", err)
		select {
		case <-ctx.Done():
			db.Close()
			return nil, errx.Wrap(ctx.Err(), "postgres connect cancelled", errx.TypeInternal)
		case <-time.After(backoff):
		}
		if backoff < 5*time.Second {
			backoff *= 2
		}
	}
}

// IsUniqueViolation reports a unique_violation from any of the given constraints,
// or from any constraint when none are named.
func IsUniqueViolation(err error, constraints ...string) bool {
	var pqErr *pq.Error
	if !errors.As(err, &pqErr) || pqErr.Code != uniqueViolation {
		return false
	}
	if len(constraints) == 0 {
		return true
	}
	for _, c := range constraints {
		if pqErr.Constraint == c {
			return true
		}
	}
	return false
}
