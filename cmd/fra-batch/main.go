package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log/slog"
	"mime"
	"os"
	"path/filepath"
	"strings"

	"github.com/fra-atlas/claims-tracker/internal/classify"
	"github.com/fra-atlas/claims-tracker/internal/common"
	"github.com/fra-atlas/claims-tracker/internal/export"
	"github.com/fra-atlas/claims-tracker/internal/extract"
	"github.com/fra-atlas/claims-tracker/internal/fields"
	"github.com/fra-atlas/claims-tracker/internal/patterns"
	"github.com/fra-atlas/claims-tracker/internal/pipeline"
	"github.com/fra-atlas/claims-tracker/internal/repository"
	"github.com/fra-atlas/claims-tracker/internal/schemes"
	"github.com/fra-atlas/claims-tracker/internal/templates"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

var documentExtensions = map[string]bool{
	".pdf":  true,
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".tif":  true,
	".tiff": true,
}

func main() {
	// Parse CLI flags
	var (
		inmem = flag.Bool("inmem", false, "use in-memory SQLite database")
		dir   = flag.String("dir", "", "directory of scanned claim documents (required)")
		out   = flag.String("out", "", "output XLSX file path (optional, defaults to parent directory)")
	)
	flag.Parse()

	// Validate required flags
	if *dir == "" {
		printError("Error: --dir is required\n")
		os.Exit(1)
	}

	// If output file not specified, use parent directory with default filename
	if *out == "" {
		parentDir := filepath.Dir(*dir)
		*out = filepath.Join(parentDir, "fra-claims.xlsx")
	}

	// Setup logger
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()

	cfg := common.LoadConfig()
	if *inmem {
		cfg.Database.Driver = "sqlite"
		cfg.Database.DSN = ":memory:"
	}
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := repository.Open(ctx, cfg.Database, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repository.Close(db, logger)

	if err := repository.Migrate(ctx, db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	// Pipeline wiring
	registry := templates.DefaultRegistry()
	p := pipeline.New(
		extract.NewVisionClient(cfg.Google, logger),
		extract.NewTranslateClient(cfg.Google, logger),
		classify.NewClassifier(registry),
		fields.NewExtractor(patterns.DefaultLibrary(), registry, logger),
		logger,
	)
	repo := repository.NewClaimRepository(db, logger)

	// Walk the directory and process each document
	logger.Info("starting batch run", "dir", *dir)
	processed := 0
	unrecognized := 0
	failures := 0

	err = filepath.WalkDir(*dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !documentExtensions[strings.ToLower(filepath.Ext(path))] {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			logger.Error("failed to read file", "path", path, "error", err)
			failures++
			return nil
		}
		doc := extract.RawDocument{
			Content:   content,
			MediaType: mime.TypeByExtension(filepath.Ext(path)),
		}

		result, err := p.Run(ctx, doc)
		if err != nil {
			var unrec *pipeline.UnrecognizedFormError
			switch {
			case errors.Is(err, pipeline.ErrNoText), errors.As(err, &unrec):
				logger.Warn("document skipped", "path", path, "reason", err.Error())
				unrecognized++
			default:
				logger.Error("failed to process document", "path", path, "error", err)
				failures++
			}
			return nil
		}

		claimID, err := repo.InsertRecord(ctx, result.Record)
		if err != nil {
			logger.Error("failed to store claim", "path", path, "error", err)
			failures++
			return nil
		}
		logger.Info("claim stored",
			"path", path,
			"claim_id", claimID,
			"category", result.Category,
			"title", result.FormTitle)
		processed++
		return nil
	})
	if err != nil {
		logger.Error("failed to walk directory", "dir", *dir, "error", err)
		os.Exit(1)
	}

	// Export to XLSX
	logger.Info("exporting to XLSX", "output", *out)
	exportService := export.NewService(repo, schemes.NewEngine(), logger)

	xlsxBytes, err := exportService.ExportClaimsXLSX(ctx)
	if err != nil {
		logger.Error("failed to export claims", "error", err)
		os.Exit(1)
	}

	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	// Log summary
	logger.Info("batch processing complete",
		"documents_processed", processed,
		"unrecognized", unrecognized,
		"failures", failures,
		"output_file", *out)

	fmt.Printf("Batch processing complete!\n")
	fmt.Printf("- Documents processed: %d\n", processed)
	fmt.Printf("- Unrecognized/empty: %d\n", unrecognized)
	fmt.Printf("- Failures: %d\n", failures)
	fmt.Printf("- Output: %s\n", *out)
}
