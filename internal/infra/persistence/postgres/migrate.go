package postgres

import (
	"context"
	"database/sql"

	"vidvault/internal/errors"
	"vidvault/internal/infra/persistence/postgres/migrations"

	"github.com/pressly/goose/v3"
)

// gooseUp is a seam so tests can observe migration runs without a database.
var gooseUp = func(ctx context.Context, db *sql.DB, dir string, opts ...goose.OptionsFunc) error {
	return goose.UpContext(ctx, db, dir, opts...)
}

// RunMigrations applies the embedded goose migrations to the database.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Wrap(err, "failed to set goose dialect")
	}

	if err := gooseUp(ctx, db, "."); err != nil {
		return errors.Wrap(err, "failed to run migrations")
	}

	return nil
}
