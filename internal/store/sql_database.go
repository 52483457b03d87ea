package store

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/config"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/internal/logger"
	"github.com/cs1501-tools-of-the-trade/social-platform-demo/migrations"
)

// DB wraps a *sql.DB together with the dialect-specific parts: the migration
// dialect, the squirrel placeholder format and the error classifier.
type DB struct {
	*sql.DB
	dialect            string
	placeholder        squirrel.PlaceholderFormat
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewConnect opens the database named by cfg.DSN. URLs with the postgres or
// postgresql scheme are opened with pgx, anything else is a SQLite file.
func NewConnect(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	dsn := strings.TrimSpace(cfg.DSN)
	switch {
	case dsn == "":
		return nil, ErrUnsupportedDSN
	case isPostgresDSN(dsn):
		return NewConnectPostgres(ctx, cfg, log)
	default:
		return NewConnectSQLite(ctx, cfg, log)
	}
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}

// Migrate applies all pending migrations for the connection's dialect.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB, db.dialect)
}

// builder returns a statement builder using the dialect's placeholders.
func (db *DB) builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(db.placeholder)
}

// classify maps a driver error to a domain error using the dialect's
// classifier. Unrecognised errors are wrapped with [ErrExecutingQuery].
func (db *DB) classify(err error, onUnique, onForeignKey error) error {
	switch db.errorClassificator.Classify(err) {
	case UniqueViolation:
		if onUnique != nil {
			return onUnique
		}
	case ForeignKeyViolation:
		if onForeignKey != nil {
			return onForeignKey
		}
	}

	return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
}
