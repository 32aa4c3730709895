// Package sqlite persists the team roster in a single-file embedded database.
package sqlite

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	crerr "github.com/cockroachdb/errors"
	"github.com/golang-migrate/migrate/v4"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jmoiron/sqlx"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	"go.opentelemetry.io/otel/attribute"
	_ "modernc.org/sqlite"

	"github.com/team-oshsharohi/roster-service/internal/infrastructure/repository/sqlite/migrations"
	"github.com/team-oshsharohi/roster-service/internal/usecase"
)

// Store owns the sqlite handle. It is the sole owner of persisted roster
// state; every other component holds at most a request-scoped copy.
type Store struct {
	db *sqlx.DB
}

// Open creates the storage directory if needed, opens (or creates) the
// database file, and applies the embedded schema migrations. Failures wrap
// usecase.ErrStorageInit: the process must not serve traffic on error.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, crerr.Mark(crerr.New("storage path is required"), usecase.ErrStorageInit)
	}

	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, crerr.Mark(crerr.Wrap(err, "create storage directory"), usecase.ErrStorageInit)
		}
	}

	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	db, err := otelsqlx.Open("sqlite", dsn,
		otelsql.WithAttributes(attribute.String("db.system", "sqlite")),
		otelsql.WithDBName("roster"),
	)
	if err != nil {
		return nil, crerr.Mark(crerr.Wrap(err, "open sqlite db"), usecase.ErrStorageInit)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, crerr.Mark(crerr.Wrap(err, "ping sqlite db"), usecase.ErrStorageInit)
	}

	// sqlite serializes writers through a single connection; the seed command
	// is the only writer anyway.
	db.SetMaxOpenConns(1)

	if err := applyMigrations(db); err != nil {
		_ = db.Close()
		return nil, crerr.Mark(err, usecase.ErrStorageInit)
	}

	return &Store{db: db}, nil
}

func applyMigrations(db *sqlx.DB) error {
	src, err := iofs.New(migrations.FS, ".")
	if err != nil {
		return fmt.Errorf("load embedded migrations: %w", err)
	}

	driver, err := migratesqlite.WithInstance(db.DB, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("init migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", src, "sqlite", driver)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}

	if err := m.Up(); err != nil && !crerr.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("apply migrations: %w", err)
	}

	return nil
}

// DB exposes the underlying handle to the repositories.
func (s *Store) DB() *sqlx.DB {
	return s.db
}

// Close closes the sqlite handle.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}
