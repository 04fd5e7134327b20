package subscription

import (
	"fmt"

	"github.com/felixgeelhaar/launchkit/adapter/cli"
	"github.com/felixgeelhaar/launchkit/internal/subscriptions/application/queries"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show [id]",
	Short: "Show a subscription in detail",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.GetSubscriptionHandler == nil {
			return fmt.Errorf("application not initialized")
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid subscription id: %w", err)
		}

		ctx := cmd.Context()
		sub, err := app.GetSubscriptionHandler.Handle(ctx, queries.GetSubscriptionQuery{
			SubscriptionID: id,
		})
		if err != nil {
			return fmt.Errorf("failed to get subscription: %w", err)
		}
		if sub == nil {
			fmt.Println("Subscription not found.")
			return nil
		}

		fmt.Printf("%s\n", sub.Name)
		fmt.Printf("  id: %s\n", sub.ID)
		fmt.Printf("  price: $%.2f/%s\n", sub.Price, sub.Cycle)
		fmt.Printf("  monthly: $%.2f\n", sub.MonthlyAmount)
		if sub.Category != "" {
			fmt.Printf("  category: %s\n", sub.Category)
		}
		fmt.Printf("  started: %s\n", sub.StartDate.Format("2006-01-02"))
		fmt.Printf("  next billing: %s (%d days)\n", sub.NextBillingDate.Format("2006-01-02"), sub.DaysUntilRenewal)
		if sub.CancelURL != "" {
			fmt.Printf("  cancel: %s\n", sub.CancelURL)
		}
		if sub.Notes != "" {
			fmt.Printf("  notes: %s\n", sub.Notes)
		}

		return nil
	},
}
