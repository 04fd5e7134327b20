package domain

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines the interface for subscription persistence.
type Repository interface {
	// Save persists a subscription (create or update).
	Save(ctx context.Context, sub *Subscription) error

	// FindByID finds a subscription by its ID. Returns nil when no
	// subscription matches.
	FindByID(ctx context.Context, id uuid.UUID) (*Subscription, error)

	// FindAll returns all subscriptions in insertion order.
	FindAll(ctx context.Context) ([]*Subscription, error)

	// Delete removes a subscription. The boolean reports whether a
	// matching record existed.
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}
