package queries

import (
	"context"

	"github.com/felixgeelhaar/launchkit/internal/subscriptions/domain"
)

// SpendingSummary aggregates spend across all tracked subscriptions.
// Amounts are normalized with fixed conversion factors, not exact
// calendar math.
type SpendingSummary struct {
	MonthlyTotal      float64
	YearlyTotal       float64
	MonthlyByCategory map[string]float64
	Count             int
}

// SpendingSummaryQuery contains the parameters for the spending summary.
type SpendingSummaryQuery struct{}

// SpendingSummaryHandler handles the SpendingSummaryQuery.
type SpendingSummaryHandler struct {
	subRepo domain.Repository
}

// NewSpendingSummaryHandler creates a new SpendingSummaryHandler.
func NewSpendingSummaryHandler(subRepo domain.Repository) *SpendingSummaryHandler {
	return &SpendingSummaryHandler{subRepo: subRepo}
}

// Handle executes the SpendingSummaryQuery.
func (h *SpendingSummaryHandler) Handle(ctx context.Context, _ SpendingSummaryQuery) (*SpendingSummary, error) {
	subs, err := h.subRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	summary := &SpendingSummary{
		MonthlyByCategory: make(map[string]float64),
		Count:             len(subs),
	}

	for _, sub := range subs {
		monthly := sub.MonthlyAmount()
		summary.MonthlyTotal += monthly
		summary.YearlyTotal += sub.YearlyAmount()
		// Category keys are whatever free text was stored
		summary.MonthlyByCategory[sub.Category()] += monthly
	}

	return summary, nil
}
