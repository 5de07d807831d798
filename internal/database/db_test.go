package database

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/pressly/goose/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocabquiz/vocabquiz/internal/config"
)

func TestOpen(t *testing.T) {
	tests := []struct {
		name       string
		driver     string
		cfg        config.DatabaseConfig
		wantDriver string
		wantErr    bool
	}{
		{
			name:   "mysql with valid config",
			driver: config.StorageDriverMySQL,
			cfg: config.DatabaseConfig{
				Host:     "localhost",
				Port:     3306,
				Database: "testdb",
				Username: "testuser",
				Password: "testpass",
			},
			wantDriver: "mysql",
		},
		{
			name:   "mysql with pool settings",
			driver: config.StorageDriverMySQL,
			cfg: config.DatabaseConfig{
				Host:            "localhost",
				Port:            3306,
				Database:        "testdb",
				Username:        "testuser",
				Password:        "testpass",
				MaxOpenConns:    25,
				MaxIdleConns:    5,
				ConnMaxLifetime: 300,
			},
			wantDriver: "mysql",
		},
		{
			name:       "sqlite",
			driver:     config.StorageDriverSQLite,
			cfg:        config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "nested", "quiz.db")},
			wantDriver: "sqlite",
		},
		{
			name:    "yaml is not a database",
			driver:  config.StorageDriverYAML,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Open(tt.driver, tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.NotNil(t, got)
			defer got.Close()

			assert.Equal(t, tt.wantDriver, got.DriverName())
		})
	}
}

func TestMysqlDSN(t *testing.T) {
	got := mysqlDSN(config.DatabaseConfig{
		Host:     "db.example.com",
		Port:     3307,
		Database: "vocabquiz",
		Username: "admin",
		Password: "secret",
	})

	assert.Contains(t, got, "admin:secret@tcp(db.example.com:3307)/vocabquiz")
	assert.Contains(t, got, "clientFoundRows=true")
	assert.Contains(t, got, "parseTime=true")
	assert.Contains(t, got, "multiStatements=true")
}

func TestOpen_SQLiteMigrate(t *testing.T) {
	db, err := Open(config.StorageDriverSQLite, config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "quiz.db")})
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()
	require.NoError(t, Ping(ctx, db, 1))

	applied, err := Migrate(ctx, db)
	require.NoError(t, err)
	assert.Equal(t, []string{"001_create_days", "002_create_entries"}, applied)

	applied, err = Migrate(ctx, db)
	require.NoError(t, err)
	assert.Empty(t, applied)

	_, err = db.ExecContext(ctx, "INSERT INTO days (id, name, created_at) VALUES (?, ?, ?)", "d1", "Day 1", time.Now().UTC())
	assert.NoError(t, err)
}

func TestPing(t *testing.T) {
	original := pingDelay
	pingDelay = time.Millisecond
	t.Cleanup(func() { pingDelay = original })

	tests := []struct {
		name     string
		attempts uint
		failures int
		wantErr  bool
	}{
		{name: "ready", attempts: 3},
		{name: "ready after retries", attempts: 3, failures: 2},
		{name: "never ready", attempts: 2, failures: 2, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockDB, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
			require.NoError(t, err)
			defer mockDB.Close()

			for range tt.failures {
				mock.ExpectPing().WillReturnError(errors.New("connection refused"))
			}
			if !tt.wantErr {
				mock.ExpectPing()
			}

			err = Ping(context.Background(), sqlx.NewDb(mockDB, "mysql"), tt.attempts)
			if tt.wantErr {
				assert.ErrorContains(t, err, "connection refused")
			} else {
				assert.NoError(t, err)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestMigrate(t *testing.T) {
	first := "-- +goose Up\nCREATE TABLE a (id INT);\n\nCREATE INDEX idx_a ON a (id);\n\n-- +goose Down\nDROP TABLE a;\n"
	second := "-- +goose Up\nCREATE TABLE b (id INT);\n\n-- +goose Down\nDROP TABLE b;\n"
	broken := "-- +goose Up\nCREATE TABLE c (id INT;\n"

	tests := []struct {
		name        string
		applied     fstest.MapFS
		fsys        fstest.MapFS
		wantApplied []string
		wantErr     bool
	}{
		{
			name: "applies every migration on an empty database",
			fsys: fstest.MapFS{
				"001_first.sql":  {Data: []byte(first)},
				"002_second.sql": {Data: []byte(second)},
			},
			wantApplied: []string{"001_first", "002_second"},
		},
		{
			name:    "skips applied migrations",
			applied: fstest.MapFS{"001_first.sql": {Data: []byte(first)}},
			fsys: fstest.MapFS{
				"001_first.sql":  {Data: []byte(first)},
				"002_second.sql": {Data: []byte(second)},
			},
			wantApplied: []string{"002_second"},
		},
		{
			name: "stops at a failing migration",
			fsys: fstest.MapFS{
				"001_first.sql":  {Data: []byte(first)},
				"002_broken.sql": {Data: []byte(broken)},
				"003_second.sql": {Data: []byte(second)},
			},
			wantApplied: []string{"001_first"},
			wantErr:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, err := Open(config.StorageDriverSQLite, config.DatabaseConfig{Path: filepath.Join(t.TempDir(), "quiz.db")})
			require.NoError(t, err)
			defer db.Close()
			ctx := context.Background()

			if tt.applied != nil {
				_, err := migrate(ctx, db, tt.applied)
				require.NoError(t, err)
			}

			got, err := migrate(ctx, db, tt.fsys)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantApplied, got)
		})
	}
}

func TestGooseDialect(t *testing.T) {
	tests := []struct {
		driver  string
		want    goose.Dialect
		wantErr bool
	}{
		{driver: "mysql", want: goose.DialectMySQL},
		{driver: "sqlite", want: goose.DialectSQLite3},
		{driver: "sqlmock", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.driver, func(t *testing.T) {
			got, err := gooseDialect(tt.driver)
			if tt.wantErr {
				assert.ErrorContains(t, err, tt.driver)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
