package domain

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for waitlist persistence.
type Repository interface {
	// Save persists a waitlist and its subscribers (create or update).
	Save(ctx context.Context, waitlist *Waitlist) error

	// FindByID finds a waitlist by its ID. Returns nil when no waitlist
	// matches.
	FindByID(ctx context.Context, id uuid.UUID) (*Waitlist, error)

	// FindByIDOrSlug resolves a waitlist by either its ID string or its
	// slug. Returns nil when nothing matches.
	FindByIDOrSlug(ctx context.Context, idOrSlug string) (*Waitlist, error)

	// FindAll returns all waitlists in creation order.
	FindAll(ctx context.Context) ([]*Waitlist, error)

	// Delete removes a waitlist. The boolean reports whether a matching
	// record existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
