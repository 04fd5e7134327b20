package waitlist

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/launchkit/adapter/cli"
	"github.com/felixgeelhaar/launchkit/internal/waitlists/application/queries"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Short:   "List waitlists",
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListWaitlistsHandler == nil {
			return fmt.Errorf("application not initialized")
		}

		ctx := cmd.Context()
		lists, err := app.ListWaitlistsHandler.Handle(ctx, queries.ListWaitlistsQuery{})
		if err != nil {
			return fmt.Errorf("failed to list waitlists: %w", err)
		}

		if len(lists) == 0 {
			fmt.Println("No waitlists found.")
			return nil
		}

		fmt.Printf("Waitlists (%d):\n", len(lists))
		fmt.Println(strings.Repeat("-", 60))
		for _, wl := range lists {
			fmt.Printf("  %-24s /%s  %d subscriber(s)\n", wl.Name, wl.Slug, wl.SubscriberCount)
			if wl.Description != "" {
				fmt.Printf("    %s\n", wl.Description)
			}
		}

		return nil
	},
}
