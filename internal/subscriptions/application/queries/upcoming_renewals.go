package queries

import (
	"context"
	"sort"
	"time"

	"github.com/felixgeelhaar/launchkit/internal/subscriptions/domain"
)

// UpcomingRenewalsQuery contains the parameters for the renewal forecast.
type UpcomingRenewalsQuery struct {
	DaysAhead int // Defaults to 7 when zero
}

// UpcomingRenewalsHandler handles the UpcomingRenewalsQuery.
type UpcomingRenewalsHandler struct {
	subRepo domain.Repository
}

// NewUpcomingRenewalsHandler creates a new UpcomingRenewalsHandler.
func NewUpcomingRenewalsHandler(subRepo domain.Repository) *UpcomingRenewalsHandler {
	return &UpcomingRenewalsHandler{subRepo: subRepo}
}

// Handle executes the UpcomingRenewalsQuery. It returns subscriptions whose
// next billing date falls within [now, now+daysAhead], both ends inclusive,
// sorted by that date ascending.
func (h *UpcomingRenewalsHandler) Handle(ctx context.Context, query UpcomingRenewalsQuery) ([]SubscriptionDTO, error) {
	daysAhead := query.DaysAhead
	if daysAhead == 0 {
		daysAhead = 7
	}

	subs, err := h.subRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	cutoff := now.Add(time.Duration(daysAhead) * 24 * time.Hour)

	upcoming := make([]*domain.Subscription, 0)
	for _, sub := range subs {
		billing := sub.NextBillingDate()
		if billing.Before(now) || billing.After(cutoff) {
			continue
		}
		upcoming = append(upcoming, sub)
	}

	sort.Slice(upcoming, func(i, j int) bool {
		return upcoming[i].NextBillingDate().Before(upcoming[j].NextBillingDate())
	})

	dtos := make([]SubscriptionDTO, 0, len(upcoming))
	for _, sub := range upcoming {
		dtos = append(dtos, toSubscriptionDTO(sub, now))
	}

	return dtos, nil
}
