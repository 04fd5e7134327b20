package commands

import (
	"context"
	"time"

	"github.com/felixgeelhaar/launchkit/internal/subscriptions/domain"
	"github.com/google/uuid"
)

// AddSubscriptionCommand contains the data needed to track a subscription.
type AddSubscriptionCommand struct {
	Name      string
	Price     float64
	Cycle     string
	Category  string
	StartDate time.Time
	LogoURL   string
	Color     string
	CancelURL string
	Notes     string
}

// AddSubscriptionResult contains the result of adding a subscription.
type AddSubscriptionResult struct {
	SubscriptionID  uuid.UUID
	NextBillingDate time.Time
}

// AddSubscriptionHandler handles the AddSubscriptionCommand.
type AddSubscriptionHandler struct {
	subRepo domain.Repository
}

// NewAddSubscriptionHandler creates a new AddSubscriptionHandler.
func NewAddSubscriptionHandler(subRepo domain.Repository) *AddSubscriptionHandler {
	return &AddSubscriptionHandler{subRepo: subRepo}
}

// Handle executes the AddSubscriptionCommand.
func (h *AddSubscriptionHandler) Handle(ctx context.Context, cmd AddSubscriptionCommand) (*AddSubscriptionResult, error) {
	startDate := cmd.StartDate
	if startDate.IsZero() {
		startDate = time.Now()
	}

	sub, err := domain.NewSubscription(
		cmd.Name,
		cmd.Price,
		domain.BillingCycle(cmd.Cycle),
		cmd.Category,
		startDate,
		time.Now(),
	)
	if err != nil {
		return nil, err
	}

	if cmd.LogoURL != "" {
		sub.SetLogoURL(cmd.LogoURL)
	}
	if cmd.Color != "" {
		sub.SetColor(cmd.Color)
	}
	if cmd.CancelURL != "" {
		sub.SetCancelURL(cmd.CancelURL)
	}
	if cmd.Notes != "" {
		sub.SetNotes(cmd.Notes)
	}

	if err := h.subRepo.Save(ctx, sub); err != nil {
		return nil, err
	}

	return &AddSubscriptionResult{
		SubscriptionID:  sub.ID(),
		NextBillingDate: sub.NextBillingDate(),
	}, nil
}
