package cli

import (
	subCommands "github.com/felixgeelhaar/launchkit/internal/subscriptions/application/commands"
	subQueries "github.com/felixgeelhaar/launchkit/internal/subscriptions/application/queries"
	wlCommands "github.com/felixgeelhaar/launchkit/internal/waitlists/application/commands"
	wlQueries "github.com/felixgeelhaar/launchkit/internal/waitlists/application/queries"
)

// App holds the CLI application dependencies.
type App struct {
	// Subscription Command Handlers
	AddSubscriptionHandler    *subCommands.AddSubscriptionHandler
	UpdateSubscriptionHandler *subCommands.UpdateSubscriptionHandler
	RemoveSubscriptionHandler *subCommands.RemoveSubscriptionHandler

	// Subscription Query Handlers
	ListSubscriptionsHandler *subQueries.ListSubscriptionsHandler
	GetSubscriptionHandler   *subQueries.GetSubscriptionHandler
	SpendingSummaryHandler   *subQueries.SpendingSummaryHandler
	UpcomingRenewalsHandler  *subQueries.UpcomingRenewalsHandler

	// Waitlist Command Handlers
	CreateWaitlistHandler *wlCommands.CreateWaitlistHandler
	AddSubscriberHandler  *wlCommands.AddSubscriberHandler
	DeleteWaitlistHandler *wlCommands.DeleteWaitlistHandler

	// Waitlist Query Handlers
	ListWaitlistsHandler *wlQueries.ListWaitlistsHandler
	GetWaitlistHandler   *wlQueries.GetWaitlistHandler
	WaitlistStatsHandler *wlQueries.WaitlistStatsHandler
}

// app is the global CLI application instance
var app *App

// SetApp sets the global CLI application instance.
func SetApp(a *App) {
	app = a
}

// GetApp returns the global CLI application instance.
func GetApp() *App {
	return app
}
