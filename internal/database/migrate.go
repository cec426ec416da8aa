package database

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/osse101/HamsterHaven_Go/internal/database/schema"
)

func openForMigrations(connString string) (*sql.DB, error) {
	db, err := sql.Open(DriverName, connString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToOpenDatabase, err)
	}
	goose.SetBaseFS(schema.Migrations)
	if err := goose.SetDialect(MigrationDialect); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToSetDialect, err)
	}
	return db, nil
}

// Migrate applies all pending embedded migrations
func Migrate(ctx context.Context, connString string) error {
	db, err := openForMigrations(connString)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := goose.UpContext(ctx, db, schema.MigrationsDir); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToMigrate, err)
	}

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToReadVersion, err)
	}
	slog.Default().Info(LogMsgMigrationsApplied, "version", version)
	return nil
}

// SchemaVersion reports the currently applied migration version
func SchemaVersion(ctx context.Context, connString string) (int64, error) {
	db, err := openForMigrations(connString)
	if err != nil {
		return 0, err
	}
	defer db.Close()

	version, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", ErrMsgFailedToReadVersion, err)
	}
	return version, nil
}
