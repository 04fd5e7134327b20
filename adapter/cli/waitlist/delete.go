package waitlist

import (
	"fmt"

	"github.com/felixgeelhaar/launchkit/adapter/cli"
	"github.com/felixgeelhaar/launchkit/internal/waitlists/application/commands"
	"github.com/spf13/cobra"
)

var deleteCmd = &cobra.Command{
	Use:     "delete [id-or-slug]",
	Short:   "Delete a waitlist and its subscribers",
	Aliases: []string{"rm"},
	Args:    cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.DeleteWaitlistHandler == nil {
			return fmt.Errorf("application not initialized")
		}

		ctx := cmd.Context()
		result, err := app.DeleteWaitlistHandler.Handle(ctx, commands.DeleteWaitlistCommand{
			WaitlistIDOrSlug: args[0],
		})
		if err != nil {
			return fmt.Errorf("failed to delete waitlist: %w", err)
		}

		if !result.Deleted {
			fmt.Println("Waitlist not found.")
			return nil
		}

		fmt.Printf("Waitlist deleted: %s\n", args[0])
		return nil
	},
}
