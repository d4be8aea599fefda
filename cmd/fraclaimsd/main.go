package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/fra-atlas/claims-tracker/internal/classify"
	"github.com/fra-atlas/claims-tracker/internal/common"
	"github.com/fra-atlas/claims-tracker/internal/export"
	"github.com/fra-atlas/claims-tracker/internal/extract"
	"github.com/fra-atlas/claims-tracker/internal/fields"
	"github.com/fra-atlas/claims-tracker/internal/patterns"
	"github.com/fra-atlas/claims-tracker/internal/pipeline"
	"github.com/fra-atlas/claims-tracker/internal/repository"
	"github.com/fra-atlas/claims-tracker/internal/schemes"
	"github.com/fra-atlas/claims-tracker/internal/server"
	"github.com/fra-atlas/claims-tracker/internal/templates"
)

func main() {
	// Logger
	logger, _ := zap.NewProduction()
	defer logger.Sync()
	log := logger.Sugar()

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(slogger)

	// Env
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// Database
	db, err := repository.Open(ctx, cfg.Database, slogger)
	if err != nil {
		log.Fatalf("opening database: %v", err)
	}
	defer repository.Close(db, slogger)

	if err := repository.HealthCheck(ctx, db, cfg.Database.DialTimeout, slogger); err != nil {
		log.Fatalf("DB health failed: %v", err)
	}
	log.Infow("DB health OK")

	if err := repository.Migrate(ctx, db); err != nil {
		log.Fatalf("migrating database: %v", err)
	}

	// Pipeline wiring
	registry := templates.DefaultRegistry()
	p := pipeline.New(
		extract.NewVisionClient(cfg.Google, slogger),
		extract.NewTranslateClient(cfg.Google, slogger),
		classify.NewClassifier(registry),
		fields.NewExtractor(patterns.DefaultLibrary(), registry, slogger),
		slogger,
	)

	repo := repository.NewClaimRepository(db, slogger)
	engine := schemes.NewEngine()
	exporter := export.NewService(repo, engine, slogger)

	health := func(r *http.Request) error {
		return repository.HealthCheck(r.Context(), db, cfg.Database.DialTimeout, slogger)
	}
	svc := server.NewService(p, repo, engine, exporter, health, logger)

	httpServer := &http.Server{
		Addr:              cfg.Server.HTTPAddr,
		Handler:           svc.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Infof("HTTP serving on %s", cfg.Server.HTTPAddr)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("http serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Warnf("shutdown: %v", err)
	}
	fmt.Println("stopped.")
}
