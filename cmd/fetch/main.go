package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/andrewborzenkov20-ui/Stockify/config"
	"github.com/andrewborzenkov20-ui/Stockify/internal/adapters/marketdata"
)

// fetch downloads daily close history for the symbol universe into the local
// cache. Run it ahead of the game; rounds only read cached data.
func main() {
	configPath := flag.String("config", "config/config.yaml", "path to config file")
	verbose := flag.Bool("verbose", false, "set log level to debug")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		slog.Error("failed to load config", "err", err, "path", *configPath)
		os.Exit(1)
	}
	if *verbose {
		cfg.Log.Level = "debug"
	}

	level := slog.LevelInfo
	if cfg.Log.Level == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	if cfg.Data.APIKey == "" {
		slog.Error("no API key configured (set ALPHAVANTAGE_API_KEY or data.api_key)")
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	client := marketdata.NewClient(cfg.Data.BaseURL, cfg.Data.APIKey)
	cache := marketdata.NewLocalProvider(cfg.Data.CacheDir)
	fetcher := marketdata.NewFetcher(client, cache, cfg.Data.MaxNewPerDay)

	fetched, err := fetcher.FetchMissing(ctx, cfg.Data.Symbols)
	if err != nil {
		slog.Error("fetch aborted", "err", err, "fetched", fetched)
		os.Exit(1)
	}

	slog.Info("done", "fetched", fetched, "universe", len(cfg.Data.Symbols))
}
