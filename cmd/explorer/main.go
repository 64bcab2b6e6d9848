// Package main is the entry point for the terminal explorer.
package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/seaview/explorer/internal/config"
	"github.com/seaview/explorer/internal/logging"
	"github.com/seaview/explorer/internal/opensea"
	"github.com/seaview/explorer/internal/ui"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.LogLevel)

	slog.Info("explorer_starting",
		"network", cfg.Network,
		"api_key", cfg.MaskedAPIKey(),
		"default_collection", cfg.DefaultCollection,
		"collection_supply", cfg.CollectionSupply,
		"assets_file", cfg.AssetsFile,
	)

	client := opensea.New(
		opensea.WithNetwork(cfg.Network),
		opensea.WithCredentials(cfg.APIKey, cfg.APISecret),
	)

	app := ui.NewApp(client, cfg)

	// Stop the TUI on SIGINT/SIGTERM; the q key handles the common case.
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigChan
		slog.Info("shutdown_signal_received", "signal", sig.String())
		app.Stop()
	}()

	if err := app.Run(); err != nil {
		slog.Error("tui_error", "error", err)
		os.Exit(1)
	}

	slog.Info("shutdown_complete")
}
