package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/launchkit/internal/subscriptions/domain"
	"github.com/google/uuid"
)

// GetSubscriptionQuery contains the parameters for fetching one subscription.
type GetSubscriptionQuery struct {
	SubscriptionID uuid.UUID
}

// GetSubscriptionHandler handles the GetSubscriptionQuery.
type GetSubscriptionHandler struct {
	subRepo domain.Repository
}

// NewGetSubscriptionHandler creates a new GetSubscriptionHandler.
func NewGetSubscriptionHandler(subRepo domain.Repository) *GetSubscriptionHandler {
	return &GetSubscriptionHandler{subRepo: subRepo}
}

// Handle executes the GetSubscriptionQuery. It returns nil when no
// subscription matches.
func (h *GetSubscriptionHandler) Handle(ctx context.Context, query GetSubscriptionQuery) (*SubscriptionDTO, error) {
	sub, err := h.subRepo.FindByID(ctx, query.SubscriptionID)
	if err != nil {
		return nil, err
	}
	if sub == nil {
		return nil, nil
	}

	dto := toSubscriptionDTO(sub, time.Now())
	return &dto, nil
}
