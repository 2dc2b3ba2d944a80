// Command umsatz sanitizes a people/revenue table: it validates the
// schema, normalizes types and names, resolves regions, harmonizes
// revenue and writes the wide and long views to an xlsx workbook.
// Completed runs are optionally persisted to SQLite and announced over
// AMQP for a running dashboard server.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"umsatz/internal/amqp"
	"umsatz/internal/config"
	applog "umsatz/internal/log"
	"umsatz/internal/services"
	"umsatz/internal/storage"
	"umsatz/internal/table"
	"umsatz/internal/table/excel"
	gsheet "umsatz/internal/table/google"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	logger := applog.New(applog.Config{
		Component: applog.ComponentApp,
		Handler: slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}),
	})
	applog.SetDefault(logger)

	cfg := config.Load()

	// Positional arguments override the configured paths:
	// umsatz [input.xlsx [output.xlsx]]
	args := os.Args[1:]
	if len(args) > 0 {
		cfg.InputPath = args[0]
	}
	if len(args) > 1 {
		cfg.OutputPath = args[1]
	}

	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	var source table.Source
	switch cfg.SourceBackend {
	case "sheets":
		src, err := gsheet.NewFromEnv(ctx)
		if err != nil {
			logger.Error("Failed to initialize Google Sheets source", "error", err)
			os.Exit(1)
		}
		source = src
		logger.Info("Reading input from Google Sheets", "spreadsheet_id", cfg.GoogleSpreadsheetID)
	default:
		source = excel.NewSource(cfg.InputPath)
		logger.Info("Reading input from workbook", "path", cfg.InputPath)
	}

	sink := excel.NewSink(cfg.OutputPath)

	var store *storage.Repository
	if cfg.SQLiteDBPath != "" {
		repo, err := storage.NewRepository(cfg.SQLiteDBPath)
		if err != nil {
			logger.Error("Failed to initialize run store", "error", err, "path", cfg.SQLiteDBPath)
			os.Exit(1)
		}
		defer repo.Close()
		store = repo
	}

	var notifier *amqp.Client
	if cfg.AMQPURL != "" {
		client, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
		if err != nil {
			logger.Error("Failed to initialize AMQP client", "error", err)
			os.Exit(1)
		}
		notifier = client
		defer notifier.Close()
	}

	svc := services.NewRunService(source, []table.Sink{sink}, store, notifier)
	out, err := svc.Run(ctx)
	if err != nil {
		logger.Error("Sanitization run failed", "error", err)
		os.Exit(1)
	}

	// The workbook is written only after the whole run succeeded.
	if err := sink.Close(); err != nil {
		logger.Error("Failed to write output workbook", "error", err, "path", cfg.OutputPath)
		os.Exit(1)
	}

	fmt.Println(out.Diag.Summary())
}
