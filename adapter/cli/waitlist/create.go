package waitlist

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/felixgeelhaar/launchkit/adapter/cli"
	"github.com/felixgeelhaar/launchkit/internal/waitlists/application/commands"
	"github.com/spf13/cobra"
)

var (
	createSlug        string
	createDescription string
)

var (
	slugStrip  = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaces = regexp.MustCompile(`\s+`)
)

// suggestSlug derives a slug from a display name by stripping everything
// that is not a letter, digit, space, or hyphen, then collapsing spaces.
func suggestSlug(name string) string {
	s := strings.ToLower(strings.TrimSpace(name))
	s = slugStrip.ReplaceAllString(s, "")
	return slugSpaces.ReplaceAllString(s, "-")
}

var createCmd = &cobra.Command{
	Use:   "create [name]",
	Short: "Create a new waitlist",
	Long: `Create a new waitlist. When no slug is given, one is derived from
the name.

Examples:
  launchkit waitlist create "Beta Launch"
  launchkit waitlist create "My App" --slug my-app --description "Early access"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.CreateWaitlistHandler == nil {
			return fmt.Errorf("application not initialized")
		}

		name := args[0]
		slug := createSlug
		if slug == "" {
			slug = suggestSlug(name)
		}

		ctx := cmd.Context()
		result, err := app.CreateWaitlistHandler.Handle(ctx, commands.CreateWaitlistCommand{
			Name:        name,
			Description: createDescription,
			Slug:        slug,
		})
		if err != nil {
			return fmt.Errorf("failed to create waitlist: %w", err)
		}

		fmt.Printf("Waitlist created: %s\n", result.WaitlistID)
		fmt.Printf("  name: %s\n", name)
		fmt.Printf("  slug: %s\n", result.Slug)

		return nil
	},
}

func init() {
	createCmd.Flags().StringVarP(&createSlug, "slug", "s", "", "URL slug (derived from name when empty)")
	createCmd.Flags().StringVarP(&createDescription, "description", "d", "", "waitlist description")
}
