// Package storage opens the configured KV backend.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"thesaurusrex/internal/config"
	"thesaurusrex/internal/repository"
	"thesaurusrex/internal/repository/badgerkv"
	"thesaurusrex/internal/repository/postgres"

	"github.com/golang-migrate/migrate/v4"
	postgresdb "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/lib/pq"
	"go.uber.org/zap"
)

// MigrationsURL is where schema migrations are read from
const MigrationsURL = "file://migrations"

const retryDelay = 2 * time.Second

// Store is an open KV backend
type Store struct {
	KV    repository.KVStore
	close func() error
}

// Close releases the backend
func (s *Store) Close() error {
	return s.close()
}

// Open opens the backend selected by cfg. Postgres connections are attempted
// up to attempts times and migrated before use.
func Open(cfg *config.Config, attempts int, logger *zap.Logger) (*Store, error) {
	switch cfg.Storage.Driver {
	case config.DriverPostgres:
		db, err := connectDatabase(cfg.DSN(), attempts, logger)
		if err != nil {
			return nil, err
		}
		logger.Info("Database connection established")

		if err := runMigrations(db, logger); err != nil {
			db.Close()
			return nil, err
		}
		return &Store{KV: postgres.NewKVRepo(db), close: db.Close}, nil

	case config.DriverBadger:
		store, err := badgerkv.Open(cfg.Storage.BadgerPath, logger)
		if err != nil {
			return nil, err
		}
		return &Store{KV: store, close: store.Close}, nil
	}

	return nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
}

// connectDatabase connects to PostgreSQL with retries
func connectDatabase(dsn string, attempts int, logger *zap.Logger) (*sql.DB, error) {
	var db *sql.DB
	var err error

	for i := 0; i < attempts; i++ {
		if i > 0 {
			time.Sleep(retryDelay)
		}

		db, err = sql.Open("postgres", dsn)
		if err != nil {
			logger.Warn("Failed to open database connection",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			continue
		}

		// Test connection
		if err = db.Ping(); err != nil {
			logger.Warn("Failed to ping database",
				zap.Int("attempt", i+1),
				zap.Error(err),
			)
			db.Close()
			continue
		}

		db.SetMaxOpenConns(25)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(5 * time.Minute)

		return db, nil
	}

	return nil, fmt.Errorf("failed to connect to database after %d attempts: %w", attempts, err)
}

// runMigrations runs database migrations
func runMigrations(db *sql.DB, logger *zap.Logger) error {
	driver, err := postgresdb.WithInstance(db, &postgresdb.Config{})
	if err != nil {
		return fmt.Errorf("failed to create migration driver: %w", err)
	}

	m, err := migrate.NewWithDatabaseInstance(MigrationsURL, "postgres", driver)
	if err != nil {
		return fmt.Errorf("failed to create migration instance: %w", err)
	}

	err = m.Up()
	switch {
	case errors.Is(err, migrate.ErrNoChange):
		logger.Info("No new migrations to apply")
	case err != nil:
		return fmt.Errorf("failed to run migrations: %w", err)
	default:
		logger.Info("Migrations applied successfully")
	}
	return nil
}
