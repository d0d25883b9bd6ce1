//go:build integration

// Package testutil starts disposable PostgreSQL instances for integration tests.
package testutil

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/helixir/news-board-service/internal/config"
)

const (
	postgresImage    = "postgres:16-alpine"
	postgresDatabase = "news_board_test"
	postgresUser     = "newsboard"
	postgresPassword = "newsboard"
)

// StartPostgres runs a PostgreSQL container and returns a database config
// pointing at it. The returned func terminates the container.
func StartPostgres(ctx context.Context) (*config.DatabaseConfig, func(), error) {
	pgContainer, err := postgres.Run(ctx,
		postgresImage,
		postgres.WithDatabase(postgresDatabase),
		postgres.WithUsername(postgresUser),
		postgres.WithPassword(postgresPassword),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("start postgres container: %w", err)
	}

	terminate := func() {
		if err := pgContainer.Terminate(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "failed to terminate postgres container: %v\n", err)
		}
	}

	host, err := pgContainer.Host(ctx)
	if err != nil {
		terminate()
		return nil, nil, fmt.Errorf("resolve container host: %w", err)
	}
	port, err := pgContainer.MappedPort(ctx, "5432/tcp")
	if err != nil {
		terminate()
		return nil, nil, fmt.Errorf("resolve container port: %w", err)
	}

	cfg := &config.DatabaseConfig{
		Host:              host,
		Port:              port.Int(),
		User:              postgresUser,
		Password:          postgresPassword,
		Name:              postgresDatabase,
		SSLMode:           config.SSLModeDisable,
		MaxConns:          5,
		MinConns:          1,
		MaxConnLifetime:   time.Hour,
		MaxConnIdleTime:   30 * time.Minute,
		HealthCheckPeriod: 30 * time.Second,
		ConnectTimeout:    10 * time.Second,
		MigrationPath:     MigrationsPath(),
	}

	return cfg, terminate, nil
}

// MigrationsPath returns the absolute path of the repository's migrations directory.
func MigrationsPath() string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "migrations")
}
