// Package main is the batch asset downloader.
//
// Usage: fetcher [collection]
// Downloads every asset of the collection to the configured JSON file.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/seaview/explorer/internal/config"
	"github.com/seaview/explorer/internal/fetcher"
	"github.com/seaview/explorer/internal/logging"
	"github.com/seaview/explorer/internal/opensea"
)

func main() {
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel)

	collection := flag.Arg(0)
	if collection == "" {
		collection = cfg.DefaultCollection
	}

	slog.Info("config_loaded",
		"network", cfg.Network,
		"api_key", cfg.MaskedAPIKey(),
		"collection", collection,
		"page_size", cfg.FetchPageSize,
		"delay", cfg.FetchDelay,
		"assets_file", cfg.AssetsFile,
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	client := opensea.New(
		opensea.WithNetwork(cfg.Network),
		opensea.WithCredentials(cfg.APIKey, cfg.APISecret),
	)

	f := fetcher.New(client, cfg.FetchPageSize, cfg.FetchDelay, cfg.AssetsFile)
	count, err := f.Run(ctx, collection)
	if err != nil {
		slog.Error("fetch_failed", "collection", collection, "error", err)
		os.Exit(1)
	}

	slog.Info("done", "assets", count, "file", cfg.AssetsFile)
}
