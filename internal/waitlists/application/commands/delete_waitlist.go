package commands

import (
	"context"

	"github.com/felixgeelhaar/launchkit/internal/waitlists/domain"
)

// DeleteWaitlistCommand contains the data needed to delete a waitlist.
type DeleteWaitlistCommand struct {
	WaitlistIDOrSlug string
}

// DeleteWaitlistResult contains the result of deleting a waitlist.
type DeleteWaitlistResult struct {
	Deleted bool
}

// DeleteWaitlistHandler handles the DeleteWaitlistCommand.
type DeleteWaitlistHandler struct {
	wlRepo domain.Repository
}

// NewDeleteWaitlistHandler creates a new DeleteWaitlistHandler.
func NewDeleteWaitlistHandler(wlRepo domain.Repository) *DeleteWaitlistHandler {
	return &DeleteWaitlistHandler{wlRepo: wlRepo}
}

// Handle executes the DeleteWaitlistCommand.
func (h *DeleteWaitlistHandler) Handle(ctx context.Context, cmd DeleteWaitlistCommand) (*DeleteWaitlistResult, error) {
	wl, err := h.wlRepo.FindByIDOrSlug(ctx, cmd.WaitlistIDOrSlug)
	if err != nil {
		return nil, err
	}
	if wl == nil {
		return nil, domain.ErrWaitlistNotFound
	}

	deleted, err := h.wlRepo.Delete(ctx, wl.ID())
	if err != nil {
		return nil, err
	}

	return &DeleteWaitlistResult{Deleted: deleted}, nil
}
