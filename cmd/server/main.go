package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/cardledger/server/internal/catalog"
	"github.com/cardledger/server/internal/config"
	"github.com/cardledger/server/internal/importer"
	"github.com/cardledger/server/internal/logging"
	"github.com/cardledger/server/internal/match"
	"github.com/cardledger/server/internal/web"
)

func main() {
	// Load .env file if it exists (Overload overwrites existing env vars)
	if err := godotenv.Overload(); err != nil {
		slog.Info("no .env file found, using environment variables")
	} else {
		slog.Info("loaded .env file (overwriting existing env vars)")
	}

	// Load and validate configuration
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Setup structured logging based on config
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format)

	slog.Info("configuration loaded",
		"port", cfg.Server.Port,
		"catalog_base_url", cfg.Catalog.BaseURL,
		"match_min_score", cfg.Matching.MinScore,
		"match_concurrency", cfg.Matching.Concurrency,
	)

	importer.HighValueThreshold = float64(cfg.Import.HighValueThreshold)

	svc := importer.NewService(slog.Default())

	// Catalog search is optional; without it the batch match endpoint
	// reports itself unavailable but imports still work.
	var search match.SearchFunc
	if cfg.Catalog.BaseURL != "" {
		client := catalog.NewClient(catalog.Options{
			BaseURL:    cfg.Catalog.BaseURL,
			APIKey:     cfg.Catalog.APIKey,
			PageSize:   cfg.Catalog.PageSize,
			Timeout:    cfg.Catalog.Timeout,
			MaxRetries: cfg.Catalog.MaxRetries,
		})
		search = client.Search
		slog.Info("catalog client configured", "base_url", cfg.Catalog.BaseURL)
	} else {
		slog.Warn("no catalog base URL configured, matching endpoints limited")
	}

	server := web.NewServer(svc, search, cfg)

	// Graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh

		slog.Info("shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("shutdown error", "error", err)
		}
	}()

	slog.Info("server starting", "addr", cfg.Server.Addr())
	if err := server.Start(cfg.Server.Addr()); err != nil {
		slog.Info("server stopped", "error", err)
	}
}
