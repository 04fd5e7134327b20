package subscription

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/launchkit/adapter/cli"
	"github.com/felixgeelhaar/launchkit/internal/subscriptions/application/queries"
	"github.com/spf13/cobra"
)

var renewalsDays int

var renewalsCmd = &cobra.Command{
	Use:   "renewals",
	Short: "Show subscriptions renewing soon",
	Long: `Show subscriptions whose next billing date falls inside the coming
window, soonest first.

Examples:
  launchkit subscription renewals
  launchkit subscription renewals --days 30`,
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.UpcomingRenewalsHandler == nil {
			return fmt.Errorf("application not initialized")
		}

		ctx := cmd.Context()
		renewals, err := app.UpcomingRenewalsHandler.Handle(ctx, queries.UpcomingRenewalsQuery{
			DaysAhead: renewalsDays,
		})
		if err != nil {
			return fmt.Errorf("failed to list renewals: %w", err)
		}

		if len(renewals) == 0 {
			fmt.Println("No upcoming renewals.")
			return nil
		}

		fmt.Printf("Upcoming renewals (%d):\n", len(renewals))
		fmt.Println(strings.Repeat("-", 60))
		for _, r := range renewals {
			fmt.Printf("  %-24s $%-8.2f %s (in %d day(s))\n",
				r.Name,
				r.Price,
				r.NextBillingDate.Format("2006-01-02"),
				r.DaysUntilRenewal,
			)
		}

		return nil
	},
}

func init() {
	renewalsCmd.Flags().IntVarP(&renewalsDays, "days", "d", 7, "look-ahead window in days")
}
