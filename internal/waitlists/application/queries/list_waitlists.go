package queries

import (
	"context"
	"time"

	"github.com/felixgeelhaar/launchkit/internal/waitlists/domain"
	"github.com/google/uuid"
)

// SubscriberDTO is a data transfer object for waitlist subscribers.
type SubscriberDTO struct {
	ID            uuid.UUID
	Email         string
	ReferralCode  string
	ReferredBy    string
	ReferralCount int
	Position      int
	CreatedAt     time.Time
}

// WaitlistDTO is a data transfer object for waitlists.
type WaitlistDTO struct {
	ID              uuid.UUID
	Name            string
	Description     string
	Slug            string
	Settings        domain.Settings
	SubscriberCount int
	CreatedAt       time.Time
}

// ListWaitlistsQuery contains the parameters for listing waitlists.
type ListWaitlistsQuery struct{}

// ListWaitlistsHandler handles the ListWaitlistsQuery.
type ListWaitlistsHandler struct {
	wlRepo domain.Repository
}

// NewListWaitlistsHandler creates a new ListWaitlistsHandler.
func NewListWaitlistsHandler(wlRepo domain.Repository) *ListWaitlistsHandler {
	return &ListWaitlistsHandler{wlRepo: wlRepo}
}

// Handle executes the ListWaitlistsQuery.
func (h *ListWaitlistsHandler) Handle(ctx context.Context, query ListWaitlistsQuery) ([]WaitlistDTO, error) {
	lists, err := h.wlRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	dtos := make([]WaitlistDTO, 0, len(lists))
	for _, wl := range lists {
		dtos = append(dtos, toWaitlistDTO(wl))
	}

	return dtos, nil
}

func toWaitlistDTO(wl *domain.Waitlist) WaitlistDTO {
	return WaitlistDTO{
		ID:              wl.ID(),
		Name:            wl.Name(),
		Description:     wl.Description(),
		Slug:            wl.Slug(),
		Settings:        wl.Settings(),
		SubscriberCount: len(wl.Subscribers()),
		CreatedAt:       wl.CreatedAt(),
	}
}

func toSubscriberDTO(sub *domain.Subscriber) SubscriberDTO {
	return SubscriberDTO{
		ID:            sub.ID(),
		Email:         sub.Email(),
		ReferralCode:  sub.ReferralCode(),
		ReferredBy:    sub.ReferredBy(),
		ReferralCount: sub.ReferralCount(),
		Position:      sub.Position(),
		CreatedAt:     sub.CreatedAt(),
	}
}
