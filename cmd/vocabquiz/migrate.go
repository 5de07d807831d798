package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vocabquiz/vocabquiz/internal/database"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply database migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}
			if !cfg.Storage.IsSQL() {
				return fmt.Errorf("the %s storage driver has no database to migrate", cfg.Storage.Driver)
			}

			db, err := database.Open(cfg.Storage.Driver, cfg.Database)
			if err != nil {
				return fmt.Errorf("database.Open() > %w", err)
			}
			defer func() {
				_ = db.Close()
			}()
			if err := database.Ping(cmd.Context(), db, cfg.Database.PingAttempts); err != nil {
				return fmt.Errorf("database.Ping() > %w", err)
			}

			applied, err := database.Migrate(cmd.Context(), db)
			if err != nil {
				return fmt.Errorf("database.Migrate() > %w", err)
			}
			if len(applied) == 0 {
				printf(cmd, "Already up to date\n")
				return nil
			}
			for _, version := range applied {
				printf(cmd, "Applied %s\n", version)
			}
			return nil
		},
	}
}
