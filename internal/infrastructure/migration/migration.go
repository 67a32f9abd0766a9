package migration

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v4/pgxpool"
)

// RunMigrations executes all necessary database migrations on startup.
func RunMigrations(ctx context.Context, pool *pgxpool.Pool) error {
	slog.Info("Starting database migrations")

	migrations := []Migration{
		{
			Name: "create_export_jobs",
			Up:   createExportJobs,
		},
		{
			Name: "add_language_to_export_jobs",
			Up:   addLanguageToExportJobs,
		},
	}

	for _, m := range migrations {
		if err := m.Up(ctx, pool); err != nil {
			slog.Error("Migration failed", "name", m.Name, "error", err)
			return err
		}
		slog.Info("Migration completed", "name", m.Name)
	}

	slog.Info("All migrations completed successfully")
	return nil
}

// Migration represents a database migration
type Migration struct {
	Name string
	Up   func(ctx context.Context, pool *pgxpool.Pool) error
}

func createExportJobs(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		CREATE TABLE IF NOT EXISTS export_jobs (
			id UUID PRIMARY KEY,
			user_id UUID NOT NULL,
			template_key TEXT NOT NULL,
			resume JSONB NOT NULL DEFAULT '{}'::jsonb,
			status TEXT NOT NULL DEFAULT 'pending',
			metadata JSONB NOT NULL DEFAULT '{}'::jsonb,
			created_at TIMESTAMPTZ NOT NULL DEFAULT now(),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT now()
		);
	`
	if _, err := pool.Exec(ctx, query); err != nil {
		return err
	}
	slog.Info("Successfully ensured export_jobs table")
	return nil
}

// addLanguageToExportJobs adds the language column if it doesn't exist
func addLanguageToExportJobs(ctx context.Context, pool *pgxpool.Pool) error {
	query := `
		ALTER TABLE export_jobs
		ADD COLUMN IF NOT EXISTS language TEXT NOT NULL DEFAULT 'en';
	`
	if _, err := pool.Exec(ctx, query); err != nil {
		// Log the error but don't fail - the column may already exist
		slog.Warn("Error adding language column (may already exist)", "error", err)
		return nil
	}
	slog.Info("Successfully added language column to export_jobs table")
	return nil
}
