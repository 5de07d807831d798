// Package database opens the SQL databases that back the vocabulary store and applies their schema.
package database

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/avast/retry-go"
	"github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"

	"github.com/vocabquiz/vocabquiz/internal/config"
	"github.com/vocabquiz/vocabquiz/schemas"
)

var pingDelay = 500 * time.Millisecond

// Open opens a MySQL or SQLite connection using the provided config.
func Open(driver string, cfg config.DatabaseConfig) (*sqlx.DB, error) {
	var db *sqlx.DB
	var err error
	switch driver {
	case config.StorageDriverMySQL:
		db, err = sqlx.Open("mysql", mysqlDSN(cfg))
	case config.StorageDriverSQLite:
		if dir := filepath.Dir(cfg.Path); dir != "" {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("os.MkdirAll(%s) > %w", dir, err)
			}
		}
		db, err = sqlx.Open("sqlite", sqliteDSN(cfg))
	default:
		return nil, fmt.Errorf("unsupported database driver: %q", driver)
	}
	if err != nil {
		return nil, fmt.Errorf("sqlx.Open() > %w", err)
	}

	if cfg.MaxOpenConns > 0 {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
	}
	if cfg.MaxIdleConns > 0 {
		db.SetMaxIdleConns(cfg.MaxIdleConns)
	}
	if cfg.ConnMaxLifetime > 0 {
		db.SetConnMaxLifetime(time.Duration(cfg.ConnMaxLifetime) * time.Second)
	}

	return db, nil
}

func mysqlDSN(cfg config.DatabaseConfig) string {
	mysqlCfg := mysql.NewConfig()
	mysqlCfg.User = cfg.Username
	mysqlCfg.Passwd = cfg.Password
	mysqlCfg.Net = "tcp"
	mysqlCfg.Addr = fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	mysqlCfg.DBName = cfg.Database
	mysqlCfg.ParseTime = true
	mysqlCfg.MultiStatements = true
	// Renaming a day to its current name still counts as an affected row
	mysqlCfg.ClientFoundRows = true
	if cfg.TLS {
		mysqlCfg.TLSConfig = "true"
	}
	if len(cfg.Params) > 0 {
		mysqlCfg.Params = cfg.Params
	}
	return mysqlCfg.FormatDSN()
}

func sqliteDSN(cfg config.DatabaseConfig) string {
	return "file:" + cfg.Path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}

// Ping waits for the database to accept connections, retrying with backoff.
func Ping(ctx context.Context, db *sqlx.DB, attempts uint) error {
	if err := retry.Do(
		func() error {
			return db.PingContext(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(max(1, attempts)),
		retry.Delay(pingDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			slog.Debug("database is not ready", slog.Uint64("attempt", uint64(n+1)), slog.Any("error", err))
		}),
	); err != nil {
		return fmt.Errorf("db.PingContext() > %w", err)
	}
	return nil
}

// Migrate applies the embedded migrations that have not been applied yet and returns their versions.
func Migrate(ctx context.Context, db *sqlx.DB) ([]string, error) {
	fsys, err := fs.Sub(schemas.Migrations, "migrations")
	if err != nil {
		return nil, fmt.Errorf("fs.Sub() > %w", err)
	}
	return migrate(ctx, db, fsys)
}

func migrate(ctx context.Context, db *sqlx.DB, fsys fs.FS) ([]string, error) {
	dialect, err := gooseDialect(db.DriverName())
	if err != nil {
		return nil, err
	}
	provider, err := goose.NewProvider(dialect, db.DB, fsys)
	if err != nil {
		return nil, fmt.Errorf("goose.NewProvider() > %w", err)
	}

	results, err := provider.Up(ctx)
	var partialErr *goose.PartialError
	if errors.As(err, &partialErr) {
		results = partialErr.Applied
	}

	applied := make([]string, 0, len(results))
	for _, result := range results {
		if result.Error != nil {
			continue
		}
		version := strings.TrimSuffix(filepath.Base(result.Source.Path), ".sql")
		slog.Info("applied migration", slog.String("version", version), slog.Duration("duration", result.Duration))
		applied = append(applied, version)
	}
	if err != nil {
		return applied, fmt.Errorf("provider.Up() > %w", err)
	}
	return applied, nil
}

func gooseDialect(driverName string) (goose.Dialect, error) {
	switch driverName {
	case config.StorageDriverMySQL:
		return goose.DialectMySQL, nil
	case config.StorageDriverSQLite:
		return goose.DialectSQLite3, nil
	default:
		return "", fmt.Errorf("no migration dialect for database driver %q", driverName)
	}
}
