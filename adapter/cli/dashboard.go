package cli

import (
	"fmt"
	"sort"
	"strings"

	subQueries "github.com/felixgeelhaar/launchkit/internal/subscriptions/application/queries"
	wlQueries "github.com/felixgeelhaar/launchkit/internal/waitlists/application/queries"
	"github.com/spf13/cobra"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show spending and waitlist overview",
	Long: `Display a combined view of your launch toolkit including:
- Monthly and yearly subscription spend
- Spend per category
- Renewals due in the next 7 days
- Waitlist signup totals

Examples:
  launchkit dashboard`,
	Aliases: []string{"dash"},
	RunE: func(cmd *cobra.Command, args []string) error {
		app := GetApp()
		if app == nil {
			return fmt.Errorf("application not initialized")
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "\n  LAUNCHKIT DASHBOARD")
		fmt.Fprintln(out, strings.Repeat("═", 60))

		if app.SpendingSummaryHandler != nil {
			showSpending(cmd, app)
		}
		if app.UpcomingRenewalsHandler != nil {
			showRenewals(cmd, app)
		}
		if app.ListWaitlistsHandler != nil {
			showWaitlists(cmd, app)
		}

		fmt.Fprintln(out)
		return nil
	},
}

func showSpending(cmd *cobra.Command, app *App) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\n  SPENDING")
	fmt.Fprintln(out, strings.Repeat("-", 60))

	summary, err := app.SpendingSummaryHandler.Handle(cmd.Context(), subQueries.SpendingSummaryQuery{})
	if err != nil {
		fmt.Fprintf(out, "    unavailable: %v\n", err)
		return
	}

	fmt.Fprintf(out, "    %d subscriptions\n", summary.Count)
	fmt.Fprintf(out, "    monthly: $%.2f\n", summary.MonthlyTotal)
	fmt.Fprintf(out, "    yearly:  $%.2f\n", summary.YearlyTotal)

	categories := make([]string, 0, len(summary.MonthlyByCategory))
	for category := range summary.MonthlyByCategory {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	for _, category := range categories {
		fmt.Fprintf(out, "      %-20s $%.2f/mo\n", category, summary.MonthlyByCategory[category])
	}
}

func showRenewals(cmd *cobra.Command, app *App) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\n  UPCOMING RENEWALS (7 days)")
	fmt.Fprintln(out, strings.Repeat("-", 60))

	renewals, err := app.UpcomingRenewalsHandler.Handle(cmd.Context(), subQueries.UpcomingRenewalsQuery{})
	if err != nil {
		fmt.Fprintf(out, "    unavailable: %v\n", err)
		return
	}

	if len(renewals) == 0 {
		fmt.Fprintln(out, "    No renewals due.")
		return
	}
	for _, r := range renewals {
		fmt.Fprintf(out, "    %-24s $%-8.2f in %d day(s)\n", r.Name, r.Price, r.DaysUntilRenewal)
	}
}

func showWaitlists(cmd *cobra.Command, app *App) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "\n  WAITLISTS")
	fmt.Fprintln(out, strings.Repeat("-", 60))

	lists, err := app.ListWaitlistsHandler.Handle(cmd.Context(), wlQueries.ListWaitlistsQuery{})
	if err != nil {
		fmt.Fprintf(out, "    unavailable: %v\n", err)
		return
	}

	if len(lists) == 0 {
		fmt.Fprintln(out, "    No waitlists yet.")
		fmt.Fprintln(out, "    Use 'launchkit waitlist create' to start one")
		return
	}
	for _, wl := range lists {
		fmt.Fprintf(out, "    %-24s /%s  %d subscriber(s)\n", wl.Name, wl.Slug, wl.SubscriberCount)
	}
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}
