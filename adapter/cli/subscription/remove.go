package subscription

import (
	"fmt"

	"github.com/felixgeelhaar/launchkit/adapter/cli"
	"github.com/felixgeelhaar/launchkit/internal/subscriptions/application/commands"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var removeCmd = &cobra.Command{
	Use:     "remove [id]",
	Short:   "Stop tracking a subscription",
	Aliases: []string{"rm", "delete"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.RemoveSubscriptionHandler == nil {
			return fmt.Errorf("application not initialized")
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid subscription id: %w", err)
		}

		ctx := cmd.Context()
		result, err := app.RemoveSubscriptionHandler.Handle(ctx, commands.RemoveSubscriptionCommand{
			SubscriptionID: id,
		})
		if err != nil {
			return fmt.Errorf("failed to remove subscription: %w", err)
		}

		if !result.Deleted {
			fmt.Println("Subscription not found.")
			return nil
		}

		fmt.Printf("Subscription removed: %s\n", id)
		return nil
	},
}
