package commands

import (
	"context"
	"time"

	"github.com/felixgeelhaar/launchkit/internal/subscriptions/domain"
	"github.com/google/uuid"
)

// UpdateSubscriptionCommand contains a partial update for a subscription.
// Nil fields are left unchanged.
type UpdateSubscriptionCommand struct {
	SubscriptionID uuid.UUID
	Name           *string
	Price          *float64
	Cycle          *string
	Category       *string
	StartDate      *time.Time
	LogoURL        *string
	Color          *string
	CancelURL      *string
	Notes          *string
}

// UpdateSubscriptionResult contains the result of updating a subscription.
type UpdateSubscriptionResult struct {
	SubscriptionID  uuid.UUID
	NextBillingDate time.Time
}

// UpdateSubscriptionHandler handles the UpdateSubscriptionCommand.
type UpdateSubscriptionHandler struct {
	subRepo domain.Repository
}

// NewUpdateSubscriptionHandler creates a new UpdateSubscriptionHandler.
func NewUpdateSubscriptionHandler(subRepo domain.Repository) *UpdateSubscriptionHandler {
	return &UpdateSubscriptionHandler{subRepo: subRepo}
}

// Handle executes the UpdateSubscriptionCommand.
func (h *UpdateSubscriptionHandler) Handle(ctx context.Context, cmd UpdateSubscriptionCommand) (*UpdateSubscriptionResult, error) {
	sub, err := h.subRepo.FindByID(ctx, cmd.SubscriptionID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, domain.ErrSubscriptionNotFound
	}

	now := time.Now()

	if cmd.Name != nil {
		if err := sub.SetName(*cmd.Name); err != nil {
			return nil, err
		}
	}
	if cmd.Price != nil {
		if err := sub.SetPrice(*cmd.Price); err != nil {
			return nil, err
		}
	}
	if cmd.Cycle != nil {
		if err := sub.SetCycle(domain.BillingCycle(*cmd.Cycle), now); err != nil {
			return nil, err
		}
	}
	if cmd.Category != nil {
		sub.SetCategory(*cmd.Category)
	}
	if cmd.StartDate != nil {
		sub.SetStartDate(*cmd.StartDate, now)
	}
	if cmd.LogoURL != nil {
		sub.SetLogoURL(*cmd.LogoURL)
	}
	if cmd.Color != nil {
		sub.SetColor(*cmd.Color)
	}
	if cmd.CancelURL != nil {
		sub.SetCancelURL(*cmd.CancelURL)
	}
	if cmd.Notes != nil {
		sub.SetNotes(*cmd.Notes)
	}

	if err := h.subRepo.Save(ctx, sub); err != nil {
		return nil, err
	}

	return &UpdateSubscriptionResult{
		SubscriptionID:  sub.ID(),
		NextBillingDate: sub.NextBillingDate(),
	}, nil
}
