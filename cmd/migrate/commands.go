package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/helixir/news-board-service/internal/config"
	"github.com/helixir/news-board-service/internal/database"
	"github.com/helixir/news-board-service/internal/observability"
	"github.com/helixir/news-board-service/internal/seed"
)

// commandTimeout bounds a single CLI invocation.
const commandTimeout = 5 * time.Minute

type options struct {
	migrationsPath string
	dataset        string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the news board database schema and seed data",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.migrationsPath, "path", "", "Override the migrations directory path")

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Run all pending migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd.Context(), opts, func(m *database.Migrator, logger zerolog.Logger) error {
					logger.Info().Msg("running all pending migrations")
					if err := m.Up(); err != nil {
						return fmt.Errorf("migrate up: %w", err)
					}
					printVersion(m, logger)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back all migrations",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd.Context(), opts, func(m *database.Migrator, logger zerolog.Logger) error {
					logger.Warn().Msg("rolling back all migrations")
					if err := m.Down(); err != nil {
						return fmt.Errorf("migrate down: %w", err)
					}
					printVersion(m, logger)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "steps N",
			Short: "Run N migration steps (positive=up, negative=down)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				n, err := strconv.Atoi(args[0])
				if err != nil || n == 0 {
					return fmt.Errorf("steps must be a non-zero integer, got %q", args[0])
				}
				return withMigrator(cmd.Context(), opts, func(m *database.Migrator, logger zerolog.Logger) error {
					logger.Info().Int("steps", n).Msg("running migration steps")
					if err := m.Steps(n); err != nil {
						return fmt.Errorf("migrate steps: %w", err)
					}
					printVersion(m, logger)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the current migration version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withMigrator(cmd.Context(), opts, func(m *database.Migrator, logger zerolog.Logger) error {
					printVersion(m, logger)
					return nil
				})
			},
		},
		&cobra.Command{
			Use:   "force V",
			Short: "Force set migration version (use to recover from failed migrations)",
			Args:  cobra.ExactArgs(1),
			RunE: func(cmd *cobra.Command, args []string) error {
				v, err := strconv.Atoi(args[0])
				if err != nil || v < 0 {
					return fmt.Errorf("version must be a non-negative integer, got %q", args[0])
				}
				return withMigrator(cmd.Context(), opts, func(m *database.Migrator, logger zerolog.Logger) error {
					logger.Warn().Int("version", v).Msg("forcing migration version")
					if err := m.Force(v); err != nil {
						return fmt.Errorf("force version: %w", err)
					}
					printVersion(m, logger)
					return nil
				})
			},
		},
		newSeedCmd(opts),
	)

	return root
}

func newSeedCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Replace all board data with a bundled dataset",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ds, err := seed.Load(opts.dataset)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), commandTimeout)
			defer cancel()

			cfg, logger, err := setup()
			if err != nil {
				return err
			}

			db, err := database.New(ctx, &cfg.Database, logger)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer db.Close()

			logger.Warn().Str("dataset", opts.dataset).Msg("replacing all board data")
			return seed.NewSeeder(db, logger).Seed(ctx, ds)
		},
	}
	cmd.Flags().StringVar(&opts.dataset, "dataset", seed.DatasetDevelopment,
		fmt.Sprintf("Dataset to load (%s or %s)", seed.DatasetDevelopment, seed.DatasetTest))
	return cmd
}

// setup loads configuration and builds the console logger used by the CLI.
func setup() (*config.Config, zerolog.Logger, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, zerolog.Nop(), fmt.Errorf("load .env: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), fmt.Errorf("load config: %w", err)
	}

	logger := observability.NewLogger(observability.LoggingConfig{
		Level:      "info",
		Format:     "console",
		Output:     "stdout",
		AddSource:  false,
		TimeFormat: time.RFC3339,
	})
	return cfg, logger.With().Str("component", "migrate").Logger(), nil
}

// withMigrator connects to the database, opens a migrator and runs fn.
func withMigrator(ctx context.Context, opts *options, fn func(*database.Migrator, zerolog.Logger) error) error {
	cfg, logger, err := setup()
	if err != nil {
		return err
	}

	migrationDir := cfg.Database.MigrationPath
	if opts.migrationsPath != "" {
		migrationDir = opts.migrationsPath
	}

	ctx, cancel := context.WithTimeout(ctx, commandTimeout)
	defer cancel()

	db, err := database.New(ctx, &cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()
	logger.Info().Msg("database connection established")

	migrator, err := database.NewMigrator(db, migrationDir, logger)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	defer func() {
		if closeErr := migrator.Close(); closeErr != nil {
			logger.Error().Err(closeErr).Msg("failed to close migrator")
		}
	}()

	return fn(migrator, logger)
}

// printVersion logs the current migration version.
func printVersion(migrator *database.Migrator, logger zerolog.Logger) {
	v, dirty, err := migrator.Version()
	if err != nil {
		logger.Warn().Err(err).Msg("could not determine migration version")
		return
	}
	logger.Info().
		Uint("version", v).
		Bool("dirty", dirty).
		Msg("current migration version")
}
