package commands

import (
	"context"

	"github.com/felixgeelhaar/launchkit/internal/subscriptions/domain"
	"github.com/google/uuid"
)

// RemoveSubscriptionCommand contains the data needed to remove a subscription.
type RemoveSubscriptionCommand struct {
	SubscriptionID uuid.UUID
}

// RemoveSubscriptionResult reports whether a subscription was removed.
type RemoveSubscriptionResult struct {
	Deleted bool
}

// RemoveSubscriptionHandler handles the RemoveSubscriptionCommand.
type RemoveSubscriptionHandler struct {
	subRepo domain.Repository
}

// NewRemoveSubscriptionHandler creates a new RemoveSubscriptionHandler.
func NewRemoveSubscriptionHandler(subRepo domain.Repository) *RemoveSubscriptionHandler {
	return &RemoveSubscriptionHandler{subRepo: subRepo}
}

// Handle executes the RemoveSubscriptionCommand.
func (h *RemoveSubscriptionHandler) Handle(ctx context.Context, cmd RemoveSubscriptionCommand) (*RemoveSubscriptionResult, error) {
	deleted, err := h.subRepo.Delete(ctx, cmd.SubscriptionID)
	if err != nil {
		return nil, err
	}
	return &RemoveSubscriptionResult{Deleted: deleted}, nil
}
