package waitlist

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/launchkit/adapter/cli"
	"github.com/felixgeelhaar/launchkit/internal/waitlists/application/queries"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats [id-or-slug]",
	Short: "Show signup and referral stats for a waitlist",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.WaitlistStatsHandler == nil {
			return fmt.Errorf("application not initialized")
		}

		ctx := cmd.Context()
		stats, err := app.WaitlistStatsHandler.Handle(ctx, queries.WaitlistStatsQuery{
			IDOrSlug: args[0],
		})
		if err != nil {
			return fmt.Errorf("failed to compute stats: %w", err)
		}
		if stats == nil {
			fmt.Println("Waitlist not found.")
			return nil
		}

		fmt.Printf("%s (/%s)\n", stats.Name, stats.Slug)
		fmt.Println(strings.Repeat("-", 40))
		fmt.Printf("  subscribers:   %d\n", stats.TotalSubscribers)
		fmt.Printf("  via referral:  %d (%d%%)\n", stats.ReferredSignups, stats.ReferralRate)
		fmt.Printf("  signups today: %d\n", stats.SignupsToday)

		return nil
	},
}
