package postgres_adapter

import (
	"context"
	"fmt"
	"io/fs"
	"sort"

	"github.com/Akergez/2572371-six-cities-4/internal/core/port"
	"github.com/Akergez/2572371-six-cities-4/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ApplyMigrations runs every embedded up migration. The scripts are
// idempotent, so running them on each start is safe.
func ApplyMigrations(ctx context.Context, pool *pgxpool.Pool, logger port.LoggerPort) error {
	files, err := fs.Glob(migrations.PostgresFS, "postgres/*.up.sql")
	if err != nil {
		return fmt.Errorf("failed to list migrations: %w", err)
	}
	sort.Strings(files)

	for _, file := range files {
		script, err := fs.ReadFile(migrations.PostgresFS, file)
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", file, err)
		}
		if _, err := pool.Exec(ctx, string(script)); err != nil {
			logger.Error("Migration failed", err, port.Fields{"file": file})
			return fmt.Errorf("failed to apply migration %s: %w", file, err)
		}
		logger.Info("Migration applied", port.Fields{"file": file})
	}
	return nil
}
