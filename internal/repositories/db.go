// Package repositories provides data access layer implementations.
// It handles all database operations and data persistence logic.
package repositories

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"ledger/internal/config"
	"ledger/internal/models"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// ErrUnsupportedClient is returned by Open for an unknown DATABASE_CLIENT.
var ErrUnsupportedClient = errors.New("unsupported database client")

// Open connects to the configured database and applies the pool settings.
// The returned handle is owned by the caller, who must Close it.
func Open(cfg config.DBConfig) (*gorm.DB, error) {
	dialector, err := dialectorFor(cfg)
	if err != nil {
		return nil, err
	}

	db, err := gorm.Open(dialector, &gorm.Config{Logger: newLogger()})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", cfg.Client, err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get database instance: %w", err)
	}

	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	if isSQLite(cfg.Client) {
		// sqlite serializes writers; one connection also keeps :memory: databases shared
		sqlDB.SetMaxOpenConns(1)
	}

	return db, nil
}

// Migrate creates or updates the ledger schema.
func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&models.Transaction{}); err != nil {
		return fmt.Errorf("failed to migrate transactions: %w", err)
	}
	return nil
}

// Close releases the connection pool behind db.
func Close(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return fmt.Errorf("failed to get database instance: %w", err)
	}
	return sqlDB.Close()
}

func dialectorFor(cfg config.DBConfig) (gorm.Dialector, error) {
	switch {
	case isSQLite(cfg.Client):
		if err := ensureDir(cfg.URL); err != nil {
			return nil, err
		}
		return sqlite.Open(cfg.URL), nil
	case cfg.Client == "postgres" || cfg.Client == "postgresql" || cfg.Client == "pg":
		return postgres.Open(cfg.URL), nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedClient, cfg.Client)
	}
}

func isSQLite(client string) bool {
	return client == "sqlite" || client == "sqlite3"
}

// ensureDir creates the parent directory of a sqlite database file.
func ensureDir(dsn string) error {
	if dsn == "" || strings.HasPrefix(dsn, ":memory:") || strings.HasPrefix(dsn, "file:") {
		return nil
	}
	dir := filepath.Dir(dsn)
	if dir == "." {
		return nil
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create database directory %s: %w", dir, err)
	}
	return nil
}

// newLogger configures GORM to log warnings and errors only and to ignore
// "record not found".
func newLogger() logger.Interface {
	return logger.New(
		log.New(os.Stdout, "\r\n", log.LstdFlags),
		logger.Config{
			SlowThreshold:             time.Second,
			LogLevel:                  logger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  !config.IsProduction(),
		},
	)
}
