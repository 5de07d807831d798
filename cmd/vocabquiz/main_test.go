package main

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vocabquiz/vocabquiz/internal/config"
	"github.com/vocabquiz/vocabquiz/internal/testutil"
)

func TestSetupLogger(t *testing.T) {
	tests := []struct {
		name      string
		debugMode bool
		wantLevel slog.Level
	}{
		{
			name:      "debug mode enabled",
			debugMode: true,
			wantLevel: slog.LevelDebug,
		},
		{
			name:      "debug mode disabled",
			debugMode: false,
			wantLevel: slog.LevelInfo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			setupLogger(tt.debugMode)
			logger := slog.Default()
			assert.NotNil(t, logger)
			assert.Equal(t, tt.wantLevel <= slog.LevelDebug, logger.Enabled(context.Background(), slog.LevelDebug))
		})
	}
}

func TestNewRootCommand(t *testing.T) {
	cmd := newRootCommand()

	assert.Equal(t, "vocabquiz", cmd.Use)
	var names []string
	for _, sub := range cmd.Commands() {
		names = append(names, sub.Name())
	}
	assert.Subset(t, names, []string{"days", "vocab", "quiz", "migrate"})
	for _, flag := range []string{"config", "debug", "storage"} {
		assert.NotNil(t, cmd.PersistentFlags().Lookup(flag), flag)
	}
}

func TestStorageDriver_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    StorageDriver
		wantErr bool
	}{
		{name: "yaml", value: "yaml", want: config.StorageDriverYAML},
		{name: "mysql", value: "mysql", want: config.StorageDriverMySQL},
		{name: "sqlite", value: "sqlite", want: config.StorageDriverSQLite},
		{name: "unknown", value: "postgres", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var driver StorageDriver
			err := driver.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, driver)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, driver)
			assert.Equal(t, tt.value, driver.String())
			assert.Equal(t, "StorageDriver", driver.Type())
		})
	}
}

func TestLoadConfig_StorageOverride(t *testing.T) {
	tmpDir := t.TempDir()
	setConfigFile(t, testutil.SetupTestConfig(t, tmpDir))

	cfg, err := loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.StorageDriverYAML, cfg.Storage.Driver)

	oldDriver := storageDriver
	storageDriver = config.StorageDriverSQLite
	t.Cleanup(func() { storageDriver = oldDriver })

	cfg, err = loadConfig()
	require.NoError(t, err)
	assert.Equal(t, config.StorageDriverSQLite, cfg.Storage.Driver)
}

func TestRootCommand_StorageFlag(t *testing.T) {
	tmpDir := t.TempDir()
	cfgPath := testutil.SetupSQLiteTestConfig(t, tmpDir)
	t.Setenv("VOCABQUIZ_STORAGE_DRIVER", "")
	setConfigFile(t, cfgPath)
	oldDriver := storageDriver
	t.Cleanup(func() { storageDriver = oldDriver })

	output, err := execute(t, newRootCommand(), "", "--config", cfgPath, "--storage", "sqlite", "days", "add", "Day 1")
	require.NoError(t, err)
	assert.Contains(t, output, "Added Day 1")
	assert.FileExists(t, filepath.Join(tmpDir, "vocabquiz.db"))
	assert.NoFileExists(t, testutil.DocumentPath(tmpDir))
}
