package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/felixgeelhaar/launchkit/adapter/api"
	"github.com/felixgeelhaar/launchkit/adapter/cli"
	"github.com/felixgeelhaar/launchkit/adapter/cli/subscription"
	"github.com/felixgeelhaar/launchkit/adapter/cli/waitlist"
	"github.com/felixgeelhaar/launchkit/internal/app"
	"github.com/felixgeelhaar/launchkit/pkg/config"
)

func main() {
	// Setup logger
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))

	// Create context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Handle shutdown signals
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		cancel()
	}()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger.Warn("failed to load config, using development mode", "error", err)
		cfg = &config.Config{AppEnv: "development"}
	}

	// Update logger level based on config
	if cfg.IsDevelopment() {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	}
	cli.SetLogger(logger)

	container, err := app.NewContainer(ctx, cfg, logger)
	if err != nil {
		logger.Error("failed to initialize container", "error", err)
		os.Exit(1)
	}
	defer container.Close()

	cli.SetApp(&cli.App{
		AddSubscriptionHandler:    container.AddSubscriptionHandler,
		UpdateSubscriptionHandler: container.UpdateSubscriptionHandler,
		RemoveSubscriptionHandler: container.RemoveSubscriptionHandler,
		ListSubscriptionsHandler:  container.ListSubscriptionsHandler,
		GetSubscriptionHandler:    container.GetSubscriptionHandler,
		SpendingSummaryHandler:    container.SpendingSummaryHandler,
		UpcomingRenewalsHandler:   container.UpcomingRenewalsHandler,
		CreateWaitlistHandler:     container.CreateWaitlistHandler,
		AddSubscriberHandler:      container.AddSubscriberHandler,
		DeleteWaitlistHandler:     container.DeleteWaitlistHandler,
		ListWaitlistsHandler:      container.ListWaitlistsHandler,
		GetWaitlistHandler:        container.GetWaitlistHandler,
		WaitlistStatsHandler:      container.WaitlistStatsHandler,
	})

	cli.SetServeAddr(cfg.ServeAddr)
	cli.SetServeHandlers(
		api.NewWaitlistHandler(
			container.AddSubscriberHandler,
			container.GetWaitlistHandler,
			container.WaitlistStatsHandler,
			logger,
		),
		api.NewSubscriptionHandler(
			container.ListSubscriptionsHandler,
			container.SpendingSummaryHandler,
			logger,
		),
	)

	// Register command groups
	cli.AddCommand(subscription.Cmd)
	cli.AddCommand(waitlist.Cmd)

	cli.Execute()
}
