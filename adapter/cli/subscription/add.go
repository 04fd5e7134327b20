package subscription

import (
	"fmt"
	"time"

	"github.com/felixgeelhaar/launchkit/adapter/cli"
	"github.com/felixgeelhaar/launchkit/internal/subscriptions/application/commands"
	"github.com/felixgeelhaar/launchkit/internal/subscriptions/domain"
	"github.com/spf13/cobra"
)

var (
	addPrice     float64
	addCycle     string
	addCategory  string
	addStartDate string
	addLogoURL   string
	addColor     string
	addCancelURL string
	addNotes     string
)

var addCmd = &cobra.Command{
	Use:   "add [name]",
	Short: "Track a new subscription",
	Long: `Track a new subscription with its price and billing cycle.

Known services fill in their category and logo automatically.

Examples:
  launchkit subscription add "Netflix" --price 15.49
  launchkit subscription add "Hosting" --price 120 --cycle yearly --category Software
  launchkit subscription add "Spotify" --price 10.99 --start 2024-01-15`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app := cli.GetApp()
		if app == nil || app.AddSubscriptionHandler == nil {
			return fmt.Errorf("application not initialized")
		}

		name := args[0]
		category := addCategory
		logoURL := addLogoURL
		color := addColor
		cancelURL := addCancelURL

		// Fill in preset details for well-known services
		if preset, ok := domain.FindPreset(name); ok {
			if category == "" {
				category = preset.Category
			}
			if logoURL == "" {
				logoURL = preset.LogoURL
			}
			if color == "" {
				color = preset.Color
			}
			if cancelURL == "" {
				cancelURL = preset.CancelURL
			}
		}

		addCommand := commands.AddSubscriptionCommand{
			Name:      name,
			Price:     addPrice,
			Cycle:     addCycle,
			Category:  category,
			LogoURL:   logoURL,
			Color:     color,
			CancelURL: cancelURL,
			Notes:     addNotes,
		}

		if addStartDate != "" {
			parsed, err := time.Parse("2006-01-02", addStartDate)
			if err != nil {
				return fmt.Errorf("invalid start date format (use YYYY-MM-DD): %w", err)
			}
			addCommand.StartDate = parsed
		}

		ctx := cmd.Context()
		result, err := app.AddSubscriptionHandler.Handle(ctx, addCommand)
		if err != nil {
			return fmt.Errorf("failed to add subscription: %w", err)
		}

		fmt.Printf("Subscription added: %s\n", result.SubscriptionID)
		fmt.Printf("  name: %s\n", name)
		fmt.Printf("  price: $%.2f/%s\n", addPrice, addCycle)
		fmt.Printf("  next billing: %s\n", result.NextBillingDate.Format("2006-01-02"))

		return nil
	},
}

func init() {
	addCmd.Flags().Float64VarP(&addPrice, "price", "p", 0, "price per billing cycle")
	addCmd.Flags().StringVarP(&addCycle, "cycle", "y", "monthly", "billing cycle (weekly, monthly, quarterly, yearly)")
	addCmd.Flags().StringVarP(&addCategory, "category", "c", "", "category (e.g. Streaming, Software)")
	addCmd.Flags().StringVar(&addStartDate, "start", "", "start date (YYYY-MM-DD)")
	addCmd.Flags().StringVar(&addLogoURL, "logo", "", "logo image URL")
	addCmd.Flags().StringVar(&addColor, "color", "", "accent color (hex)")
	addCmd.Flags().StringVar(&addCancelURL, "cancel-url", "", "cancellation page URL")
	addCmd.Flags().StringVar(&addNotes, "notes", "", "free-form notes")
}
