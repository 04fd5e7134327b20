// Package persistence implements the subscription repository on top of the
// shared blob store. The whole subscription list lives in one JSON document
// under a fixed key; every mutation re-reads the document, changes it in
// memory, and writes it back in full.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/felixgeelhaar/launchkit/internal/shared/infrastructure/storage"
	"github.com/felixgeelhaar/launchkit/internal/subscriptions/domain"
	"github.com/google/uuid"
)

// StorageKey is the fixed blob key for subscription data.
const StorageKey = "subtrackr_data"

// BlobSubscriptionRepository implements domain.Repository using a blob store.
type BlobSubscriptionRepository struct {
	store storage.Store
}

// NewBlobSubscriptionRepository creates a new blob-backed subscription
// repository.
func NewBlobSubscriptionRepository(store storage.Store) *BlobSubscriptionRepository {
	return &BlobSubscriptionRepository{store: store}
}

// subscriptionBlob is the persisted document layout.
type subscriptionBlob struct {
	Subscriptions []subscriptionRecord `json:"subscriptions"`
	CreatedAt     time.Time            `json:"createdAt"`
}

type subscriptionRecord struct {
	ID              uuid.UUID `json:"id"`
	Name            string    `json:"name"`
	Price           float64   `json:"price"`
	BillingCycle    string    `json:"billingCycle"`
	Category        string    `json:"category"`
	StartDate       time.Time `json:"startDate"`
	NextBillingDate time.Time `json:"nextBillingDate"`
	Logo            string    `json:"logo,omitempty"`
	Color           string    `json:"color,omitempty"`
	CancelURL       string    `json:"cancelUrl,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	Reminded        bool      `json:"reminded"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// load reads the full document, initializing and persisting an empty default
// when none exists yet. A corrupt blob surfaces as an error; this variant
// does not fall back to an empty document.
func (r *BlobSubscriptionRepository) load(ctx context.Context) (*subscriptionBlob, error) {
	raw, found, err := r.store.Load(ctx, StorageKey)
	if err != nil {
		return nil, err
	}
	if !found {
		doc := &subscriptionBlob{
			Subscriptions: []subscriptionRecord{},
			CreatedAt:     time.Now().UTC(),
		}
		if err := r.save(ctx, doc); err != nil {
			return nil, err
		}
		return doc, nil
	}

	var doc subscriptionBlob
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("corrupt subscription data: %w", err)
	}
	return &doc, nil
}

func (r *BlobSubscriptionRepository) save(ctx context.Context, doc *subscriptionBlob) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to encode subscription data: %w", err)
	}
	return r.store.Save(ctx, StorageKey, raw)
}

// Save persists a subscription, replacing an existing record with the same
// ID or appending a new one.
func (r *BlobSubscriptionRepository) Save(ctx context.Context, sub *domain.Subscription) error {
	doc, err := r.load(ctx)
	if err != nil {
		return err
	}

	record := toRecord(sub)
	for i, existing := range doc.Subscriptions {
		if existing.ID == sub.ID() {
			doc.Subscriptions[i] = record
			return r.save(ctx, doc)
		}
	}

	doc.Subscriptions = append(doc.Subscriptions, record)
	return r.save(ctx, doc)
}

// FindByID retrieves a subscription by its ID. Returns nil when no record
// matches.
func (r *BlobSubscriptionRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Subscription, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, record := range doc.Subscriptions {
		if record.ID == id {
			return toDomain(record), nil
		}
	}
	return nil, nil
}

// FindAll retrieves all subscriptions in insertion order.
func (r *BlobSubscriptionRepository) FindAll(ctx context.Context) ([]*domain.Subscription, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	subs := make([]*domain.Subscription, 0, len(doc.Subscriptions))
	for _, record := range doc.Subscriptions {
		subs = append(subs, toDomain(record))
	}
	return subs, nil
}

// Delete removes the first record matching id. The boolean reports whether
// a record existed.
func (r *BlobSubscriptionRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	doc, err := r.load(ctx)
	if err != nil {
		return false, err
	}

	for i, record := range doc.Subscriptions {
		if record.ID == id {
			doc.Subscriptions = append(doc.Subscriptions[:i], doc.Subscriptions[i+1:]...)
			return true, r.save(ctx, doc)
		}
	}
	return false, nil
}

func toRecord(sub *domain.Subscription) subscriptionRecord {
	return subscriptionRecord{
		ID:              sub.ID(),
		Name:            sub.Name(),
		Price:           sub.Price(),
		BillingCycle:    string(sub.Cycle()),
		Category:        sub.Category(),
		StartDate:       sub.StartDate(),
		NextBillingDate: sub.NextBillingDate(),
		Logo:            sub.LogoURL(),
		Color:           sub.Color(),
		CancelURL:       sub.CancelURL(),
		Notes:           sub.Notes(),
		Reminded:        sub.Reminded(),
		CreatedAt:       sub.CreatedAt(),
		UpdatedAt:       sub.UpdatedAt(),
	}
}

func toDomain(record subscriptionRecord) *domain.Subscription {
	return domain.RehydrateSubscription(
		record.ID,
		record.Name,
		record.Price,
		domain.BillingCycle(record.BillingCycle),
		record.Category,
		record.StartDate,
		record.NextBillingDate,
		record.Logo,
		record.Color,
		record.CancelURL,
		record.Notes,
		record.Reminded,
		record.CreatedAt,
		record.UpdatedAt,
	)
}
