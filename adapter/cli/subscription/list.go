package subscription

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/launchkit/adapter/cli"
	"github.com/felixgeelhaar/launchkit/internal/subscriptions/application/queries"
	"github.com/spf13/cobra"
)

var listCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked subscriptions",
	Long: `List tracked subscriptions with their renewal dates and monthly cost.

Examples:
  launchkit subscription list
  launchkit subscription list --category Streaming`,
	Aliases: []string{"ls"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.ListSubscriptionsHandler == nil {
			return fmt.Errorf("application not initialized")
		}

		ctx := cmd.Context()
		subs, err := app.ListSubscriptionsHandler.Handle(ctx, queries.ListSubscriptionsQuery{
			Category: listCategory,
		})
		if err != nil {
			return fmt.Errorf("failed to list subscriptions: %w", err)
		}

		if len(subs) == 0 {
			fmt.Println("No subscriptions found.")
			return nil
		}

		fmt.Printf("Subscriptions (%d):\n", len(subs))
		fmt.Println(strings.Repeat("-", 72))
		for _, s := range subs {
			fmt.Printf("  %-24s $%-8.2f %-10s renews %s (%d days)\n",
				s.Name,
				s.Price,
				s.Cycle,
				s.NextBillingDate.Format("2006-01-02"),
				s.DaysUntilRenewal,
			)
			if s.Category != "" {
				fmt.Printf("    category: %s  monthly: $%.2f  id: %s\n", s.Category, s.MonthlyAmount, s.ID)
			} else {
				fmt.Printf("    monthly: $%.2f  id: %s\n", s.MonthlyAmount, s.ID)
			}
		}

		return nil
	},
}

func init() {
	listCmd.Flags().StringVarP(&listCategory, "category", "c", "", "filter by category")
}
