package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	tempmail "github.com/geortick/temp-email-cli"
	"github.com/geortick/temp-email-cli/internal/config"
	"github.com/geortick/temp-email-cli/internal/logger"
	"github.com/geortick/temp-email-cli/store"
	"github.com/geortick/temp-email-cli/tui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, err := logger.New(logger.Config{
		Level:       cfg.Log.Level,
		Development: cfg.Log.Development,
	})
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	client, err := tempmail.New(
		tempmail.WithBaseURL(cfg.Provider.BaseURL),
		tempmail.WithTimeout(cfg.Provider.Timeout),
		tempmail.WithRetries(cfg.Provider.MaxRetries),
		tempmail.WithRetryDelay(cfg.Provider.RetryDelay),
		tempmail.WithCreateRetries(cfg.Provider.CreateMaxRetries),
		tempmail.WithCreateRetryDelay(cfg.Provider.CreateRetryDelay),
		tempmail.WithPacingDelay(cfg.Provider.PacingDelay),
	)
	if err != nil {
		return fmt.Errorf("init provider client: %w", err)
	}

	st := store.New(cfg.Store.Path,
		store.WithExpirationWindow(cfg.Store.ExpirationWindow),
		store.WithLogger(log),
	)
	if err := st.Init(); err != nil {
		return fmt.Errorf("init address store: %w", err)
	}
	log.Debug("address store ready", zap.String("path", st.Path()))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return tui.NewApp(client, st, log).Run(ctx)
}
