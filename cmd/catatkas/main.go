package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"catatkas/internal/config"
	"catatkas/internal/keepalive"
	"catatkas/internal/services"
	"catatkas/internal/store"
	"catatkas/internal/telegram"
	"catatkas/internal/worker"
)

func main() {
	// Load .env file for local development (ignore errors in production/docker)
	_ = godotenv.Load()

	// Setup structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	logger.Info("Starting catatkas")

	// Load configuration
	cfg := config.Load()

	// Validate configuration; a missing bot token is fatal
	if err := cfg.Validate(); err != nil {
		logger.Error("Configuration validation failed", "error", err)
		os.Exit(1)
	}

	// Open the ledger store; a corrupt or missing document starts empty
	ledgerStore, err := store.Open(cfg.StorePath)
	if err != nil {
		logger.Error("Failed to open ledger store", "error", err, "path", cfg.StorePath)
		os.Exit(1)
	}

	ledgerService := services.NewLedgerService(ledgerStore)

	bot, err := telegram.NewBot(cfg.BotToken, ledgerService, cfg.ExportDir)
	if err != nil {
		logger.Error("Failed to initialize Telegram bot", "error", err)
		os.Exit(1)
	}

	reminder := worker.NewReminderWorker(ledgerStore, bot, cfg.ReminderInterval)
	liveness := keepalive.NewServer(":" + cfg.KeepalivePort)

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return bot.Run(ctx) })
	g.Go(func() error { return reminder.Run(ctx) })
	g.Go(func() error { return liveness.Run(ctx) })

	if err := g.Wait(); err != nil && err != context.Canceled {
		logger.Error("Shutdown with error", "error", err)
		os.Exit(1)
	}
	logger.Info("Stopped gracefully")
}
