package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"order-exporter/config"
	"order-exporter/metrics"
	"order-exporter/models"
	"order-exporter/scraper/amazon"
	"order-exporter/services"
	"order-exporter/storage"
	"order-exporter/utils"
)

func main() {
	os.Exit(run())
}

func run() int {
	cfg, err := config.Load()
	if err != nil {
		utils.NewLogger().Error("Invalid configuration: %v", err)
		return 1
	}

	logger, err := utils.NewLoggerWithLevel(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		return 1
	}
	defer func() { _ = logger.Sync() }()

	logger.Info("=== Order Exporter starting ===")
	logger.Info("Config — listing: %s | details: %s | year: %q | concurrency: %d | browser: %v",
		cfg.ListingGlob, cfg.DetailDir, cfg.ExportYear, cfg.MaxConcurrency, cfg.RenderWithBrowser)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var renderer amazon.Renderer = amazon.FileRenderer{}
	if cfg.RenderWithBrowser {
		browser, err := amazon.NewBrowserRenderer(cfg.ChromeBin, logger)
		if err != nil {
			logger.Error("Failed to start browser: %v", err)
			return 1
		}
		defer browser.Close()
		renderer = browser
	}

	retry := &utils.RetryConfig{
		MaxAttempts: cfg.MaxRetries,
		BaseDelay:   500 * time.Millisecond,
		Logger:      logger,
	}
	source := amazon.NewFileSource(cfg.ListingGlob, cfg.DetailDir, renderer, retry, logger)

	csvWriter, err := storage.NewCSVWriter(cfg.CSVOutputPath)
	if err != nil {
		logger.Error("Failed to create CSV writer: %v", err)
		return 1
	}
	defer csvWriter.Close()

	reg := metrics.NewRegistry()
	exporter := services.NewExporter(source, csvWriter, services.NewCleaner(logger, cfg.ExportYear), reg, logger,
		services.ExporterConfig{
			Concurrency: cfg.MaxConcurrency,
			RateLimitMs: cfg.RateLimitMs,
			IsFresh:     func(o models.Order) bool { return cfg.IsFresh(o.OrderID) },
			OnProgress: func(p services.Progress) {
				logger.Info("[progress] %d/%d %s", p.Current, p.Total, p.Message)
			},
		})

	result, err := exporter.Run(ctx)
	writeMetrics(cfg, reg, logger)
	if err != nil {
		logger.Error("Export failed: %v", err)
		return 1
	}

	if len(result.Rows) == 0 {
		logger.Error("No rows were exported. Check LISTING_GLOB and DETAIL_DIR.")
		return 1
	}

	insightSvc := services.NewInsightService(logger)
	insightSvc.Print(insightSvc.Generate(result.Rows))

	fmt.Printf("  Done. %d rows → %s\n\n", len(result.Rows), cfg.CSVOutputPath)
	return 0
}

func writeMetrics(cfg *config.Config, reg *metrics.Registry, logger *utils.Logger) {
	if cfg.MetricsPath == "" {
		return
	}
	if err := reg.WriteTextfile(cfg.MetricsPath); err != nil {
		logger.Warn("Failed to write metrics: %v", err)
		return
	}
	logger.Info("Metrics written to %s", cfg.MetricsPath)
}
