package sqlite

import (
	"context"
	"database/sql"
	_ "embed"
	"fmt"
	"net/url"
	"strings"

	_ "modernc.org/sqlite" // Register sqlite driver
)

//go:embed migrations/001_initial.sql
var migration string

const defaultBusyTimeout = 5000

type DB struct {
	*sql.DB
}

type Option func(*options)

type options struct {
	busyTimeout int
}

// WithBusyTimeout sets how long, in milliseconds, a statement waits on a
// locked database file before failing.
func WithBusyTimeout(ms int) Option {
	return func(o *options) { o.busyTimeout = ms }
}

// Open opens the database file at dsn, creating it if needed. The schema is
// not applied; call Migrate for that.
func Open(dsn string, opts ...Option) (*DB, error) {
	o := options{busyTimeout: defaultBusyTimeout}
	for _, opt := range opts {
		opt(&o)
	}

	db, err := sql.Open("sqlite", withPragma(dsn, fmt.Sprintf("busy_timeout(%d)", o.busyTimeout)))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// In-memory databases are per-connection; multiple connections each get a
	// separate empty database. Limit to one connection so migrations and
	// queries all see the same data.
	if dsn == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("open database: %w", err)
	}

	return &DB{db}, nil
}

// withPragma appends a _pragma query parameter, which the driver runs on
// every new connection.
func withPragma(dsn, pragma string) string {
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=" + url.QueryEscape(pragma)
}

// Migrate creates the exchange_rates table if it does not exist yet.
func (db *DB) Migrate(ctx context.Context) error {
	if _, err := db.ExecContext(ctx, migration); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	return nil
}

// WithTx runs fn inside a transaction. The transaction is committed when fn
// returns nil and rolled back otherwise.
func (db *DB) WithTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}
