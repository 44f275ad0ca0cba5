package store

import (
	"context"
	"database/sql"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-asset-guard/internal/logger"
	"github.com/MKhiriev/go-asset-guard/migrations"
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implementations are driver-specific.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB wraps an open *sql.DB together with the driver name, the SQL placeholder
// format to use with that driver, and a driver-specific error classifier.
type DB struct {
	*sql.DB
	driver             string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies all pending schema migrations for the DB's driver.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.driver)
}

// Builder returns a squirrel statement builder configured with the
// placeholder format of the underlying driver ($N for pgx, ? for sqlite3).
func (db *DB) Builder() sq.StatementBuilderType {
	return db.builder
}

// execRetry executes a DML statement and retries it once if the driver error
// is classified as transient (connection loss, deadlock rollback).
func (db *DB) execRetry(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := db.ExecContext(ctx, query, args...)
	if err != nil && db.errorClassificator.Classify(err) == Retryable {
		db.logger.Warn().Err(err).Str("func", "*DB.execRetry").Msg("retrying statement after transient error")
		return db.ExecContext(ctx, query, args...)
	}

	return res, err
}
