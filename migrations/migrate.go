// Package migrations embeds the goose SQL migrations for both supported
// database backends and applies them at startup.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed sqlite/*.sql postgres/*.sql
var embedMigrations embed.FS

// dialects maps a database/sql driver name to the goose dialect and the
// embedded directory holding that backend's migration files.
var dialects = map[string]struct {
	dialect string
	dir     string
}{
	"sqlite3": {dialect: "sqlite3", dir: "sqlite"},
	"pgx":     {dialect: "pgx", dir: "postgres"},
}

// Migrate applies all pending migrations for the given driver.
// Supported drivers are "sqlite3" and "pgx".
func Migrate(db *sql.DB, driver string) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	d, ok := dialects[driver]
	if !ok {
		return fmt.Errorf("migration error: unsupported driver %q", driver)
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(d.dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, d.dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
