package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/vocabquiz/vocabquiz/internal/config"
	"github.com/vocabquiz/vocabquiz/internal/database"
	"github.com/vocabquiz/vocabquiz/internal/quiz"
	"github.com/vocabquiz/vocabquiz/internal/vocabulary"
)

// StorageDriver is where days and their vocabulary are kept.
type StorageDriver string

func (d *StorageDriver) Set(val string) error {
	for _, driver := range allStorageDrivers {
		if val == string(driver) {
			*d = driver
			return nil
		}
	}
	return fmt.Errorf("invalid storage driver: %s", val)
}

func (d StorageDriver) String() string {
	return string(d)
}

func (d *StorageDriver) Type() string {
	return "StorageDriver"
}

var (
	_                 pflag.Value = (*StorageDriver)(nil)
	allStorageDrivers             = []StorageDriver{
		config.StorageDriverYAML,
		config.StorageDriverMySQL,
		config.StorageDriverSQLite,
	}
)

func loadConfig() (*config.Config, error) {
	loader, err := config.NewConfigLoader(configFile)
	if err != nil {
		return nil, fmt.Errorf("failed to create config loader: %w", err)
	}
	cfg, err := loader.Load()
	if err != nil {
		return nil, err
	}
	if storageDriver != "" {
		cfg.Storage.Driver = storageDriver.String()
	}
	return cfg, nil
}

// openStore opens the configured store. SQLite databases are migrated on open since they are local files.
// The returned function releases the store.
func openStore(ctx context.Context, cfg *config.Config) (vocabulary.Store, func(), error) {
	if !cfg.Storage.IsSQL() {
		return vocabulary.NewYAMLStore(cfg.Storage.DocumentPath), func() {}, nil
	}

	db, err := database.Open(cfg.Storage.Driver, cfg.Database)
	if err != nil {
		return nil, nil, fmt.Errorf("database.Open() > %w", err)
	}
	closer := func() {
		_ = db.Close()
	}
	if err := database.Ping(ctx, db, cfg.Database.PingAttempts); err != nil {
		closer()
		return nil, nil, fmt.Errorf("database.Ping() > %w", err)
	}
	if cfg.Storage.Driver == config.StorageDriverSQLite {
		if _, err := database.Migrate(ctx, db); err != nil {
			closer()
			return nil, nil, fmt.Errorf("database.Migrate() > %w", err)
		}
	}
	return vocabulary.NewDBStore(db), closer, nil
}

type commandEnv struct {
	cfg   *config.Config
	store vocabulary.Store
}

// withStore loads the configuration and runs fn with the configured store open.
func withStore(cmd *cobra.Command, fn func(env *commandEnv) error) error {
	cfg, err := loadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	store, closeStore, err := openStore(cmd.Context(), cfg)
	if err != nil {
		return err
	}
	defer closeStore()

	return fn(&commandEnv{cfg: cfg, store: store})
}

// findDay looks a day up by id, then by case-insensitive name.
func findDay(ctx context.Context, store vocabulary.Store, key string) (vocabulary.Day, error) {
	day, err := store.GetDay(ctx, key)
	if err == nil {
		return day, nil
	}
	if !errors.Is(err, vocabulary.ErrNotFound) {
		return vocabulary.Day{}, fmt.Errorf("store.GetDay() > %w", err)
	}

	days, err := store.ListDays(ctx)
	if err != nil {
		return vocabulary.Day{}, fmt.Errorf("store.ListDays() > %w", err)
	}
	for _, day := range days {
		if strings.EqualFold(day.Name, strings.TrimSpace(key)) {
			return day, nil
		}
	}
	return vocabulary.Day{}, fmt.Errorf("day %q: %w", key, vocabulary.ErrNotFound)
}

func sessionOptions(cfg config.QuizConfig) quiz.SessionOptions {
	return quiz.SessionOptions{
		MinimumEntries: cfg.MinimumEntries,
		Typing: quiz.TypingOptions{
			CloseSimilarity:  cfg.CloseSimilarity,
			CloseLengthRatio: cfg.CloseLengthRatio,
		},
		Rounds: quiz.RoundOptions{
			RoundSize:   cfg.RoundSize,
			Repetitions: cfg.Repetitions,
			MaxAttempts: cfg.MaxAttempts,
		},
		Matching: quiz.MatchingOptions{
			WrongFeedbackDelay: cfg.WrongFeedbackDelay,
			RoundCompleteDelay: cfg.RoundCompleteDelay,
		},
	}
}

func printf(cmd *cobra.Command, format string, args ...any) {
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), format, args...)
}
