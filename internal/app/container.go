// Package app wires configuration, storage, and handlers together for the
// CLI and API entrypoints.
package app

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/felixgeelhaar/launchkit/internal/shared/infrastructure/storage"
	subCommands "github.com/felixgeelhaar/launchkit/internal/subscriptions/application/commands"
	subQueries "github.com/felixgeelhaar/launchkit/internal/subscriptions/application/queries"
	subDomain "github.com/felixgeelhaar/launchkit/internal/subscriptions/domain"
	subPersistence "github.com/felixgeelhaar/launchkit/internal/subscriptions/infrastructure/persistence"
	wlCommands "github.com/felixgeelhaar/launchkit/internal/waitlists/application/commands"
	wlQueries "github.com/felixgeelhaar/launchkit/internal/waitlists/application/queries"
	wlDomain "github.com/felixgeelhaar/launchkit/internal/waitlists/domain"
	wlPersistence "github.com/felixgeelhaar/launchkit/internal/waitlists/infrastructure/persistence"
	"github.com/felixgeelhaar/launchkit/pkg/config"
)

// Container holds all application dependencies.
type Container struct {
	Config *config.Config
	Logger *slog.Logger

	// Storage
	Store storage.Store

	// Repositories
	SubscriptionRepo subDomain.Repository
	WaitlistRepo     wlDomain.Repository

	// Subscription command handlers
	AddSubscriptionHandler    *subCommands.AddSubscriptionHandler
	UpdateSubscriptionHandler *subCommands.UpdateSubscriptionHandler
	RemoveSubscriptionHandler *subCommands.RemoveSubscriptionHandler

	// Subscription query handlers
	ListSubscriptionsHandler *subQueries.ListSubscriptionsHandler
	GetSubscriptionHandler   *subQueries.GetSubscriptionHandler
	SpendingSummaryHandler   *subQueries.SpendingSummaryHandler
	UpcomingRenewalsHandler  *subQueries.UpcomingRenewalsHandler

	// Waitlist command handlers
	CreateWaitlistHandler *wlCommands.CreateWaitlistHandler
	AddSubscriberHandler  *wlCommands.AddSubscriberHandler
	DeleteWaitlistHandler *wlCommands.DeleteWaitlistHandler

	// Waitlist query handlers
	ListWaitlistsHandler *wlQueries.ListWaitlistsHandler
	GetWaitlistHandler   *wlQueries.GetWaitlistHandler
	WaitlistStatsHandler *wlQueries.WaitlistStatsHandler

	sqliteStore *storage.SQLiteStore
}

// NewContainer creates and wires all application dependencies.
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	if logger == nil {
		logger = slog.Default()
	}

	c := &Container{
		Config: cfg,
		Logger: logger,
	}

	if err := c.initStorage(ctx); err != nil {
		return nil, err
	}

	c.SubscriptionRepo = subPersistence.NewBlobSubscriptionRepository(c.Store)
	c.WaitlistRepo = wlPersistence.NewBlobWaitlistRepository(c.Store, logger)

	c.AddSubscriptionHandler = subCommands.NewAddSubscriptionHandler(c.SubscriptionRepo)
	c.UpdateSubscriptionHandler = subCommands.NewUpdateSubscriptionHandler(c.SubscriptionRepo)
	c.RemoveSubscriptionHandler = subCommands.NewRemoveSubscriptionHandler(c.SubscriptionRepo)

	c.ListSubscriptionsHandler = subQueries.NewListSubscriptionsHandler(c.SubscriptionRepo)
	c.GetSubscriptionHandler = subQueries.NewGetSubscriptionHandler(c.SubscriptionRepo)
	c.SpendingSummaryHandler = subQueries.NewSpendingSummaryHandler(c.SubscriptionRepo)
	c.UpcomingRenewalsHandler = subQueries.NewUpcomingRenewalsHandler(c.SubscriptionRepo)

	c.CreateWaitlistHandler = wlCommands.NewCreateWaitlistHandler(c.WaitlistRepo)
	c.AddSubscriberHandler = wlCommands.NewAddSubscriberHandler(c.WaitlistRepo)
	c.DeleteWaitlistHandler = wlCommands.NewDeleteWaitlistHandler(c.WaitlistRepo)

	c.ListWaitlistsHandler = wlQueries.NewListWaitlistsHandler(c.WaitlistRepo)
	c.GetWaitlistHandler = wlQueries.NewGetWaitlistHandler(c.WaitlistRepo)
	c.WaitlistStatsHandler = wlQueries.NewWaitlistStatsHandler(c.WaitlistRepo)

	return c, nil
}

func (c *Container) initStorage(ctx context.Context) error {
	switch c.Config.StorageBackend {
	case "", "file":
		store, err := storage.NewFileStore(c.Config.DataDir)
		if err != nil {
			return fmt.Errorf("failed to initialize file storage: %w", err)
		}
		c.Store = store
		c.Logger.Debug("using file storage", "dir", c.Config.DataDir)
	case "sqlite":
		store, err := storage.NewSQLiteStore(ctx, c.Config.SQLitePath)
		if err != nil {
			return fmt.Errorf("failed to initialize sqlite storage: %w", err)
		}
		c.Store = store
		c.sqliteStore = store
		c.Logger.Debug("using sqlite storage", "path", c.Config.SQLitePath)
	default:
		return fmt.Errorf("unknown storage backend: %s", c.Config.StorageBackend)
	}
	return nil
}

// Close releases container resources.
func (c *Container) Close() error {
	if c.sqliteStore != nil {
		return c.sqliteStore.Close()
	}
	return nil
}
