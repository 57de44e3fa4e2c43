package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"salesmetrics/internal/amqp"
	"salesmetrics/internal/cli"
	"salesmetrics/internal/export"
	gsheet "salesmetrics/internal/export/google"
	"salesmetrics/internal/metrics"
	"salesmetrics/internal/worker"
)

func main() {
	cli.LoadEnvFile()
	logger := cli.SetupLogger()

	logger.Info("Starting salesmetrics-worker")

	cfg := cli.LoadAndValidateConfig(logger)

	store := cli.InitStore(logger, cfg.SQLiteDBPath)
	defer store.Close()

	engine := metrics.NewEngine(store)

	// Google Sheets export is optional; without it, results are computed
	// and logged but not exported.
	var reportWriter export.ReportWriter
	if cfg.GoogleSpreadsheetID != "" {
		client, err := gsheet.NewFromEnv(context.Background())
		if err != nil {
			logger.Error("Failed to initialize Google Sheets client", "error", err)
			os.Exit(1)
		}
		reportWriter = client
		logger.Info("Google Sheets export enabled", "spreadsheet_id", cfg.GoogleSpreadsheetID, "sheet", cfg.ReportSheetName)
	} else {
		logger.Info("Google Sheets export disabled - no GOOGLE_SPREADSHEET_ID provided")
	}

	amqpClient, err := amqp.NewClient(cfg.AMQPURL, cfg.AMQPExchange, cfg.AMQPQueue)
	if err != nil {
		logger.Error("Failed to initialize AMQP client", "error", err)
		os.Exit(1)
	}
	defer amqpClient.Close()

	reportWorker := worker.NewReportWorker(engine, reportWriter)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return amqpClient.ConsumeReportRequests(ctx, func(msg *amqp.ReportRequestMessage) error {
			return reportWorker.HandleReportRequest(ctx, msg)
		})
	})

	// Periodic heartbeat with dataset coverage, mostly for operators
	// watching the logs.
	g.Go(func() error {
		ticker := time.NewTicker(cfg.HeartbeatInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
				years, err := store.YearsPresent(ctx)
				if err != nil {
					logger.Error("Heartbeat store check failed", "error", err)
					continue
				}
				logger.Info("Worker alive", "queue", cfg.AMQPQueue, "years_with_data", years)
			}
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		logger.Error("Worker stopped with error", "error", err)
		os.Exit(1)
	}

	logger.Info("Worker shutdown complete")
}
