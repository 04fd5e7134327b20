package waitlist

import (
	"fmt"

	"github.com/felixgeelhaar/launchkit/adapter/cli"
	"github.com/felixgeelhaar/launchkit/internal/waitlists/application/commands"
	"github.com/spf13/cobra"
)

var joinReferredBy string

var joinCmd = &cobra.Command{
	Use:   "join [id-or-slug] [email]",
	Short: "Add a subscriber to a waitlist",
	Long: `Add a subscriber to a waitlist, optionally crediting a referrer.

Examples:
  launchkit waitlist join beta-launch jane@example.com
  launchkit waitlist join beta-launch sam@example.com --ref K3XQ7A`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.AddSubscriberHandler == nil {
			return fmt.Errorf("application not initialized")
		}

		ctx := cmd.Context()
		result, err := app.AddSubscriberHandler.Handle(ctx, commands.AddSubscriberCommand{
			WaitlistIDOrSlug: args[0],
			Email:            args[1],
			ReferredBy:       joinReferredBy,
		})
		if err != nil {
			return fmt.Errorf("failed to join waitlist: %w", err)
		}

		fmt.Printf("Subscriber added: %s\n", args[1])
		fmt.Printf("  position: #%d\n", result.Position)
		fmt.Printf("  referral code: %s\n", result.ReferralCode)
		fmt.Printf("  referral link: /w/%s?ref=%s\n", args[0], result.ReferralCode)

		return nil
	},
}

func init() {
	joinCmd.Flags().StringVarP(&joinReferredBy, "ref", "r", "", "referral code of the referring subscriber")
}
