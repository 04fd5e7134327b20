// Package persistence implements the waitlist repository on top of the
// shared blob store. All waitlists live in a single JSON array under a fixed
// key; every mutation re-reads the array, changes it in memory, and writes it
// back in full.
package persistence

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/felixgeelhaar/launchkit/internal/shared/infrastructure/storage"
	"github.com/felixgeelhaar/launchkit/internal/waitlists/domain"
	"github.com/google/uuid"
)

// StorageKey is the fixed blob key for waitlist data.
const StorageKey = "waitly_data"

// BlobWaitlistRepository implements domain.Repository using a blob store.
type BlobWaitlistRepository struct {
	store  storage.Store
	logger *slog.Logger
}

// NewBlobWaitlistRepository creates a new blob-backed waitlist repository.
func NewBlobWaitlistRepository(store storage.Store, logger *slog.Logger) *BlobWaitlistRepository {
	if logger == nil {
		logger = slog.Default()
	}
	return &BlobWaitlistRepository{store: store, logger: logger}
}

type waitlistRecord struct {
	ID          uuid.UUID          `json:"id"`
	Name        string             `json:"name"`
	Description string             `json:"description,omitempty"`
	Slug        string             `json:"slug"`
	Settings    settingsRecord     `json:"settings"`
	Subscribers []subscriberRecord `json:"subscribers"`
	CreatedAt   time.Time          `json:"createdAt"`
}

type settingsRecord struct {
	PrimaryColor   string `json:"primaryColor"`
	CollectName    bool   `json:"collectName"`
	SuccessMessage string `json:"successMessage"`
}

type subscriberRecord struct {
	ID            uuid.UUID `json:"id"`
	Email         string    `json:"email"`
	ReferralCode  string    `json:"referralCode"`
	ReferredBy    string    `json:"referredBy,omitempty"`
	ReferralCount int       `json:"referralCount"`
	Position      int       `json:"position"`
	CreatedAt     time.Time `json:"createdAt"`
}

// load reads the full document. A missing blob yields an empty list without
// writing anything back; a corrupt blob is logged and treated as empty so a
// bad document never takes the waitlists down with it.
func (r *BlobWaitlistRepository) load(ctx context.Context) ([]waitlistRecord, error) {
	raw, found, err := r.store.Load(ctx, StorageKey)
	if err != nil {
		return nil, err
	}
	if !found {
		return []waitlistRecord{}, nil
	}

	var records []waitlistRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		r.logger.Warn("discarding corrupt waitlist data", "key", StorageKey, "error", err)
		return []waitlistRecord{}, nil
	}
	return records, nil
}

func (r *BlobWaitlistRepository) save(ctx context.Context, records []waitlistRecord) error {
	raw, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("failed to encode waitlist data: %w", err)
	}
	return r.store.Save(ctx, StorageKey, raw)
}

// Save persists a waitlist, replacing an existing record with the same ID or
// appending a new one.
func (r *BlobWaitlistRepository) Save(ctx context.Context, wl *domain.Waitlist) error {
	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	record := toRecord(wl)
	for i, existing := range records {
		if existing.ID == wl.ID() {
			records[i] = record
			return r.save(ctx, records)
		}
	}

	records = append(records, record)
	return r.save(ctx, records)
}

// FindByID retrieves a waitlist by its ID. Returns nil when no record
// matches.
func (r *BlobWaitlistRepository) FindByID(ctx context.Context, id uuid.UUID) (*domain.Waitlist, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if record.ID == id {
			return toDomain(record), nil
		}
	}
	return nil, nil
}

// FindByIDOrSlug retrieves a waitlist by its ID string or slug. Returns nil
// when no record matches.
func (r *BlobWaitlistRepository) FindByIDOrSlug(ctx context.Context, idOrSlug string) (*domain.Waitlist, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, record := range records {
		if record.ID.String() == idOrSlug || record.Slug == idOrSlug {
			return toDomain(record), nil
		}
	}
	return nil, nil
}

// FindAll retrieves all waitlists in insertion order.
func (r *BlobWaitlistRepository) FindAll(ctx context.Context) ([]*domain.Waitlist, error) {
	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	lists := make([]*domain.Waitlist, 0, len(records))
	for _, record := range records {
		lists = append(lists, toDomain(record))
	}
	return lists, nil
}

// Delete removes the first record matching id. The boolean reports whether a
// record existed.
func (r *BlobWaitlistRepository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	records, err := r.load(ctx)
	if err != nil {
		return false, err
	}

	for i, record := range records {
		if record.ID == id {
			records = append(records[:i], records[i+1:]...)
			return true, r.save(ctx, records)
		}
	}
	return false, nil
}

func toRecord(wl *domain.Waitlist) waitlistRecord {
	subs := wl.Subscribers()
	subRecords := make([]subscriberRecord, 0, len(subs))
	for _, sub := range subs {
		subRecords = append(subRecords, subscriberRecord{
			ID:            sub.ID(),
			Email:         sub.Email(),
			ReferralCode:  sub.ReferralCode(),
			ReferredBy:    sub.ReferredBy(),
			ReferralCount: sub.ReferralCount(),
			Position:      sub.Position(),
			CreatedAt:     sub.CreatedAt(),
		})
	}

	settings := wl.Settings()
	return waitlistRecord{
		ID:          wl.ID(),
		Name:        wl.Name(),
		Description: wl.Description(),
		Slug:        wl.Slug(),
		Settings: settingsRecord{
			PrimaryColor:   settings.PrimaryColor,
			CollectName:    settings.CollectName,
			SuccessMessage: settings.SuccessMessage,
		},
		Subscribers: subRecords,
		CreatedAt:   wl.CreatedAt(),
	}
}

func toDomain(record waitlistRecord) *domain.Waitlist {
	subs := make([]*domain.Subscriber, 0, len(record.Subscribers))
	for _, sub := range record.Subscribers {
		subs = append(subs, domain.RehydrateSubscriber(
			sub.ID,
			sub.Email,
			sub.ReferralCode,
			sub.ReferredBy,
			sub.ReferralCount,
			sub.Position,
			sub.CreatedAt,
		))
	}

	return domain.RehydrateWaitlist(
		record.ID,
		record.Name,
		record.Description,
		record.Slug,
		domain.Settings{
			PrimaryColor:   record.Settings.PrimaryColor,
			CollectName:    record.Settings.CollectName,
			SuccessMessage: record.Settings.SuccessMessage,
		},
		subs,
		record.CreatedAt,
	)
}
