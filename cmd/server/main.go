package main

import (
	"context"
	"log/slog"
	"os"

	"resume-templates/config"
	httpadapter "resume-templates/internal/adapter/http"
	repo "resume-templates/internal/adapter/repository"
	"resume-templates/internal/infrastructure/migration"
	"resume-templates/internal/render"
	"resume-templates/internal/usecase"
	"resume-templates/pkg/ai"
	infra "resume-templates/pkg/infrastructure"
	"resume-templates/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

func main() {
	logger.Init()
	cfg := config.LoadConfig()
	ctx := context.Background()

	// infra setup; the service still serves previews when the DB is down
	jobsPool, err := infra.NewJobsPool(ctx, cfg.DatabaseURL)
	if err != nil {
		slog.Warn("jobs DB not available", "error", err)
	}
	if jobsPool != nil {
		if err := migration.RunMigrations(ctx, jobsPool); err != nil {
			slog.Error("migrations failed", "error", err)
			os.Exit(1)
		}
	}

	renderer := infra.NewChromedpRenderer(cfg.ChromePath)
	registry := render.Builtin()

	jobsRepo := repo.NewJobsRepo(jobsPool)
	processor := usecase.NewProcessor(renderer, jobsRepo, registry, cfg.SchemaPath, cfg.OutputDir, cfg.DefaultLanguage)
	aiClient := ai.NewClient(cfg.AIServiceURL, cfg.DefaultLanguage)

	app := fiber.New()

	h := httpadapter.NewHandler(processor, jobsRepo, registry, aiClient)
	h.Register(app)

	slog.Info("server starting", "port", cfg.Port, "templates", len(registry.Keys()))
	if err := app.Listen(":" + cfg.Port); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
