package migrate

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"

	"github.com/pressly/goose/v3"

	"github.com/khadihouse/pos-backend/pkg/config"
)

const DefaultDir = "pkg/migrate/migrations"

// Dialect maps the configured database driver onto a goose dialect.
func Dialect(cfg config.DBConfig) string {
	if cfg.IsSQLite() {
		return "sqlite3"
	}
	return "postgres"
}

// Run executes a standard goose command that requires a DB connection.
func Run(ctx context.Context, db *sql.DB, dialect, dir string, command string, args ...string) error {
	if db == nil {
		return fmt.Errorf("db is required")
	}
	if dir == "" {
		return fmt.Errorf("dir is required")
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	// RunContext prints status output to stdout (goose internal)
	if err := goose.RunContext(ctx, command, db, dir, args...); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}

// UpToLatest applies every unapplied migration; it is a no-op when the schema
// is already at the latest version.
func UpToLatest(ctx context.Context, db *sql.DB, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("db is required")
	}
	if dir == "" {
		return fmt.Errorf("dir is required")
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	if err := goose.UpContext(ctx, db, dir); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}
	return nil
}

// HasPending reports whether any migration in dir has not been applied yet.
func HasPending(ctx context.Context, db *sql.DB, dialect, dir string) (bool, error) {
	if db == nil {
		return false, fmt.Errorf("db is required")
	}

	if err := goose.SetDialect(dialect); err != nil {
		return false, fmt.Errorf("set goose dialect: %w", err)
	}

	migrations, err := goose.CollectMigrations(dir, 0, goose.MaxVersion)
	if err != nil {
		if errors.Is(err, goose.ErrNoMigrationFiles) {
			return false, nil
		}
		return false, fmt.Errorf("collect migrations: %w", err)
	}
	if len(migrations) == 0 {
		return false, nil
	}

	current, err := goose.EnsureDBVersionContext(ctx, db)
	if err != nil {
		return false, fmt.Errorf("get db version: %w", err)
	}

	last, err := migrations.Last()
	if err != nil {
		return false, fmt.Errorf("last migration: %w", err)
	}
	return last.Version > current, nil
}

// MigrateToVersion migrates up/down to the requested version by comparing current DB version.
func MigrateToVersion(ctx context.Context, db *sql.DB, dialect, dir string, targetVersion string) error {
	if targetVersion == "" {
		return fmt.Errorf("targetVersion is required")
	}

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("set goose dialect: %w", err)
	}

	target, err := strconv.ParseInt(targetVersion, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid version %q (expected YYYYMMDDHHMMSS): %w", targetVersion, err)
	}

	current, err := goose.GetDBVersionContext(ctx, db)
	if err != nil {
		return fmt.Errorf("get db version: %w", err)
	}

	switch {
	case current == target:
		return nil

	case current < target:
		if err := goose.UpToContext(ctx, db, dir, target); err != nil {
			return fmt.Errorf("goose up-to %d: %w", target, err)
		}
		return nil

	default:
		if err := goose.DownToContext(ctx, db, dir, target); err != nil {
			return fmt.Errorf("goose down-to %d: %w", target, err)
		}
		return nil
	}
}
