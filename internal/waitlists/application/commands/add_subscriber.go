package commands

import (
	"context"
	"time"

	"github.com/felixgeelhaar/launchkit/internal/waitlists/domain"
	"github.com/google/uuid"
)

// AddSubscriberCommand contains the data needed to sign a subscriber up.
type AddSubscriberCommand struct {
	WaitlistIDOrSlug string
	Email            string
	ReferredBy       string
}

// AddSubscriberResult contains the result of a signup.
type AddSubscriberResult struct {
	SubscriberID uuid.UUID
	ReferralCode string
	Position     int
}

// AddSubscriberHandler handles the AddSubscriberCommand.
type AddSubscriberHandler struct {
	wlRepo domain.Repository
}

// NewAddSubscriberHandler creates a new AddSubscriberHandler.
func NewAddSubscriberHandler(wlRepo domain.Repository) *AddSubscriberHandler {
	return &AddSubscriberHandler{wlRepo: wlRepo}
}

// Handle executes the AddSubscriberCommand.
func (h *AddSubscriberHandler) Handle(ctx context.Context, cmd AddSubscriberCommand) (*AddSubscriberResult, error) {
	wl, err := h.wlRepo.FindByIDOrSlug(ctx, cmd.WaitlistIDOrSlug)
	if err != nil {
		return nil, err
	}
	if wl == nil {
		return nil, domain.ErrWaitlistNotFound
	}

	sub, err := wl.AddSubscriber(cmd.Email, cmd.ReferredBy, time.Now())
	if err != nil {
		return nil, err
	}

	if err := h.wlRepo.Save(ctx, wl); err != nil {
		return nil, err
	}

	return &AddSubscriberResult{
		SubscriberID: sub.ID(),
		ReferralCode: sub.ReferralCode(),
		Position:     sub.Position(),
	}, nil
}
