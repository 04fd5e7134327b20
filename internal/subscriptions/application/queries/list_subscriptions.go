package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/launchkit/internal/subscriptions/domain"
	"github.com/google/uuid"
)

// SubscriptionDTO is a data transfer object for subscriptions.
type SubscriptionDTO struct {
	ID               uuid.UUID
	Name             string
	Price            float64
	Cycle            string
	Category         string
	StartDate        time.Time
	NextBillingDate  time.Time
	DaysUntilRenewal int
	MonthlyAmount    float64
	LogoURL          string
	Color            string
	CancelURL        string
	Notes            string
	CreatedAt        time.Time
}

// ListSubscriptionsQuery contains the parameters for listing subscriptions.
type ListSubscriptionsQuery struct {
	Category string // Optional exact-match category filter
}

// ListSubscriptionsHandler handles the ListSubscriptionsQuery.
type ListSubscriptionsHandler struct {
	subRepo domain.Repository
}

// NewListSubscriptionsHandler creates a new ListSubscriptionsHandler.
func NewListSubscriptionsHandler(subRepo domain.Repository) *ListSubscriptionsHandler {
	return &ListSubscriptionsHandler{subRepo: subRepo}
}

// Handle executes the ListSubscriptionsQuery.
func (h *ListSubscriptionsHandler) Handle(ctx context.Context, query ListSubscriptionsQuery) ([]SubscriptionDTO, error) {
	subs, err := h.subRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	dtos := make([]SubscriptionDTO, 0, len(subs))
	for _, sub := range subs {
		if query.Category != "" && sub.Category() != query.Category {
			continue
		}
		dtos = append(dtos, toSubscriptionDTO(sub, now))
	}

	return dtos, nil
}

func toSubscriptionDTO(sub *domain.Subscription, now time.Time) SubscriptionDTO {
	return SubscriptionDTO{
		ID:               sub.ID(),
		Name:             sub.Name(),
		Price:            sub.Price(),
		Cycle:            string(sub.Cycle()),
		Category:         sub.Category(),
		StartDate:        sub.StartDate(),
		NextBillingDate:  sub.NextBillingDate(),
		DaysUntilRenewal: domain.DaysUntil(sub.NextBillingDate(), now),
		MonthlyAmount:    sub.MonthlyAmount(),
		LogoURL:          sub.LogoURL(),
		Color:            sub.Color(),
		CancelURL:        sub.CancelURL(),
		Notes:            sub.Notes(),
		CreatedAt:        sub.CreatedAt(),
	}
}
