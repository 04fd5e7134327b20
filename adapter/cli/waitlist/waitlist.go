package waitlist

import (
	"github.com/spf13/cobra"
)

// Cmd is the waitlist command group
var Cmd = &cobra.Command{
	Use:     "waitlist",
	Short:   "Build and manage waitlists",
	Long:    `Create waitlists, collect signups with referral codes, and review stats.`,
	Aliases: []string{"wl"},
}

func init() {
	Cmd.AddCommand(createCmd)
	Cmd.AddCommand(listCmd)
	Cmd.AddCommand(deleteCmd)
	Cmd.AddCommand(statsCmd)
	Cmd.AddCommand(joinCmd)
	Cmd.AddCommand(subscribersCmd)
}
