package queries

import (
	"context"

	"github.com/felixgeelhaar/launchkit/internal/waitlists/domain"
)

// GetWaitlistQuery contains the parameters for fetching a single waitlist.
type GetWaitlistQuery struct {
	IDOrSlug string
}

// WaitlistDetailDTO is a waitlist together with its full subscriber roster.
type WaitlistDetailDTO struct {
	WaitlistDTO
	Subscribers []SubscriberDTO
}

// GetWaitlistHandler handles the GetWaitlistQuery.
type GetWaitlistHandler struct {
	wlRepo domain.Repository
}

// NewGetWaitlistHandler creates a new GetWaitlistHandler.
func NewGetWaitlistHandler(wlRepo domain.Repository) *GetWaitlistHandler {
	return &GetWaitlistHandler{wlRepo: wlRepo}
}

// Handle executes the GetWaitlistQuery. Returns nil when no waitlist
// matches.
func (h *GetWaitlistHandler) Handle(ctx context.Context, query GetWaitlistQuery) (*WaitlistDetailDTO, error) {
	wl, err := h.wlRepo.FindByIDOrSlug(ctx, query.IDOrSlug)
	if err != nil {
		return nil, err
	}
	if wl == nil {
		return nil, nil
	}

	subs := wl.Subscribers()
	subDTOs := make([]SubscriberDTO, 0, len(subs))
	for _, sub := range subs {
		subDTOs = append(subDTOs, toSubscriberDTO(sub))
	}

	return &WaitlistDetailDTO{
		WaitlistDTO: toWaitlistDTO(wl),
		Subscribers: subDTOs,
	}, nil
}
