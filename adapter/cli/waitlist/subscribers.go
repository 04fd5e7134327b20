package waitlist

import (
	"fmt"
	"strings"

	"github.com/felixgeelhaar/launchkit/adapter/cli"
	"github.com/felixgeelhaar/launchkit/internal/waitlists/application/queries"
	"github.com/spf13/cobra"
)

var subscribersCmd = &cobra.Command{
	Use:     "subscribers [id-or-slug]",
	Short:   "List a waitlist's subscribers",
	Aliases: []string{"subs"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.GetWaitlistHandler == nil {
			return fmt.Errorf("application not initialized")
		}

		ctx := cmd.Context()
		wl, err := app.GetWaitlistHandler.Handle(ctx, queries.GetWaitlistQuery{
			IDOrSlug: args[0],
		})
		if err != nil {
			return fmt.Errorf("failed to get waitlist: %w", err)
		}
		if wl == nil {
			fmt.Println("Waitlist not found.")
			return nil
		}

		if len(wl.Subscribers) == 0 {
			fmt.Println("No subscribers yet.")
			return nil
		}

		fmt.Printf("%s (%d subscribers):\n", wl.Name, len(wl.Subscribers))
		fmt.Println(strings.Repeat("-", 72))
		for _, sub := range wl.Subscribers {
			referred := ""
			if sub.ReferredBy != "" {
				referred = fmt.Sprintf("  via %s", sub.ReferredBy)
			}
			fmt.Printf("  #%-4d %-32s code %s  %d referral(s)%s\n",
				sub.Position,
				sub.Email,
				sub.ReferralCode,
				sub.ReferralCount,
				referred,
			)
		}

		return nil
	},
}
