package subscription

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/launchkit/adapter/cli"
	"github.com/felixgeelhaar/launchkit/internal/subscriptions/application/commands"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
)

var (
	updateName      string
	updatePrice     float64
	updateCycle     string
	updateCategory  string
	updateStartDate string
	updateLogoURL   string
	updateColor     string
	updateCancelURL string
	updateNotes     string
)

var updateCmd = &cobra.Command{
	Use:   "update [id]",
	Short: "Update a subscription",
	Long: `Update fields of a tracked subscription. Only flags that are set
are changed; changing the cycle or start date recomputes the next
billing date.

Examples:
  launchkit subscription update 5b2c... --price 17.99
  launchkit subscription update 5b2c... --cycle yearly`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.UpdateSubscriptionHandler == nil {
			return fmt.Errorf("application not initialized")
		}

		id, err := uuid.Parse(args[0])
		if err != nil {
			return fmt.Errorf("invalid subscription id: %w", err)
		}

		updateCommand := commands.UpdateSubscriptionCommand{SubscriptionID: id}

		flags := cmd.Flags()
		if flags.Changed("name") {
			updateCommand.Name = &updateName
		}
		if flags.Changed("price") {
			updateCommand.Price = &updatePrice
		}
		if flags.Changed("cycle") {
			updateCommand.Cycle = &updateCycle
		}
		if flags.Changed("category") {
			updateCommand.Category = &updateCategory
		}
		if flags.Changed("start") {
			parsed, err := time.Parse("2006-01-02", updateStartDate)
			if err != nil {
				return fmt.Errorf("invalid start date format (use YYYY-MM-DD): %w", err)
			}
			updateCommand.StartDate = &parsed
		}
		if flags.Changed("logo") {
			updateCommand.LogoURL = &updateLogoURL
		}
		if flags.Changed("color") {
			updateCommand.Color = &updateColor
		}
		if flags.Changed("cancel-url") {
			updateCommand.CancelURL = &updateCancelURL
		}
		if flags.Changed("notes") {
			updateCommand.Notes = &updateNotes
		}

		ctx := cmd.Context()
		result, err := app.UpdateSubscriptionHandler.Handle(ctx, updateCommand)
		if err != nil {
			return fmt.Errorf("failed to update subscription: %w", err)
		}

		fmt.Printf("Subscription updated: %s\n", id)
		fmt.Printf("  next billing: %s\n", result.NextBillingDate.Format("2006-01-02"))

		return nil
	},
}

func init() {
	updateCmd.Flags().StringVarP(&updateName, "name", "n", "", "subscription name")
	updateCmd.Flags().Float64VarP(&updatePrice, "price", "p", 0, "price per billing cycle")
	updateCmd.Flags().StringVarP(&updateCycle, "cycle", "y", "", "billing cycle (weekly, monthly, quarterly, yearly)")
	updateCmd.Flags().StringVarP(&updateCategory, "category", "c", "", "category")
	updateCmd.Flags().StringVar(&updateStartDate, "start", "", "start date (YYYY-MM-DD)")
	updateCmd.Flags().StringVar(&updateLogoURL, "logo", "", "logo image URL")
	updateCmd.Flags().StringVar(&updateColor, "color", "", "accent color (hex)")
	updateCmd.Flags().StringVar(&updateCancelURL, "cancel-url", "", "cancellation page URL")
	updateCmd.Flags().StringVar(&updateNotes, "notes", "", "free-form notes")
}
