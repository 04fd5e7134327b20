package commands

import (
	"context"

	"github.com/felixgeelhaar/launchkit/internal/waitlists/domain"
	"github.com/google/uuid"
)

// CreateWaitlistCommand contains the data needed to create a waitlist.
type CreateWaitlistCommand struct {
	Name        string
	Description string
	Slug        string
}

// CreateWaitlistResult contains the result of creating a waitlist.
type CreateWaitlistResult struct {
	WaitlistID uuid.UUID
	Slug       string
}

// CreateWaitlistHandler handles the CreateWaitlistCommand.
type CreateWaitlistHandler struct {
	wlRepo domain.Repository
}

// NewCreateWaitlistHandler creates a new CreateWaitlistHandler.
func NewCreateWaitlistHandler(wlRepo domain.Repository) *CreateWaitlistHandler {
	return &CreateWaitlistHandler{wlRepo: wlRepo}
}

// Handle executes the CreateWaitlistCommand.
func (h *CreateWaitlistHandler) Handle(ctx context.Context, cmd CreateWaitlistCommand) (*CreateWaitlistResult, error) {
	wl, err := domain.NewWaitlist(cmd.Name, cmd.Description, cmd.Slug)
	if err != nil {
		return nil, err
	}

	existing, err := h.wlRepo.FindByIDOrSlug(ctx, wl.Slug())
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.ErrWaitlistSlugTaken
	}

	if err := h.wlRepo.Save(ctx, wl); err != nil {
		return nil, err
	}

	return &CreateWaitlistResult{
		WaitlistID: wl.ID(),
		Slug:       wl.Slug(),
	}, nil
}
