package persistence_test

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/felixgeelhaar/launchkit/internal/shared/infrastructure/storage"
	"github.com/felixgeelhaar/launchkit/internal/subscriptions/domain"
	"github.com/felixgeelhaar/launchkit/internal/subscriptions/infrastructure/persistence"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*persistence.BlobSubscriptionRepository, *storage.FileStore) {
	t.Helper()

	store, err := storage.NewFileStore(t.TempDir())
	require.NoError(t, err)

	return persistence.NewBlobSubscriptionRepository(store), store
}

func newSubscription(t *testing.T, name string) *domain.Subscription {
	t.Helper()
	sub, err := domain.NewSubscription(
		name, 15.49, domain.CycleMonthly, "Streaming",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Now(),
	)
	require.NoError(t, err)
	return sub
}

func TestBlobSubscriptionRepository_InitializesDefaultBlob(t *testing.T) {
	repo, store := setupRepo(t)
	ctx := context.Background()

	subs, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, subs)

	// First access persists the empty default
	raw, found, err := store.Load(ctx, persistence.StorageKey)
	require.NoError(t, err)
	require.True(t, found)

	var doc map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw, &doc))
	assert.Contains(t, doc, "subscriptions")
	assert.Contains(t, doc, "createdAt")
}

func TestBlobSubscriptionRepository_SaveAndFindByID(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	sub := newSubscription(t, "Netflix")
	require.NoError(t, repo.Save(ctx, sub))

	found, err := repo.FindByID(ctx, sub.ID())
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, sub.ID(), found.ID())
	assert.Equal(t, "Netflix", found.Name())
	assert.Equal(t, 15.49, found.Price())
	assert.Equal(t, domain.CycleMonthly, found.Cycle())
	assert.Equal(t, sub.NextBillingDate().Unix(), found.NextBillingDate().Unix())
	assert.False(t, found.Reminded())
}

func TestBlobSubscriptionRepository_FindByID_Absent(t *testing.T) {
	repo, _ := setupRepo(t)

	found, err := repo.FindByID(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestBlobSubscriptionRepository_SaveUpdatesExisting(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	sub := newSubscription(t, "Netflix")
	require.NoError(t, repo.Save(ctx, sub))

	require.NoError(t, sub.SetPrice(17.99))
	require.NoError(t, repo.Save(ctx, sub))

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, 17.99, all[0].Price())
}

func TestBlobSubscriptionRepository_FindAllKeepsInsertionOrder(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	for _, name := range []string{"Netflix", "Spotify", "Hulu"} {
		require.NoError(t, repo.Save(ctx, newSubscription(t, name)))
	}

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "Netflix", all[0].Name())
	assert.Equal(t, "Spotify", all[1].Name())
	assert.Equal(t, "Hulu", all[2].Name())
}

func TestBlobSubscriptionRepository_Delete(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	sub := newSubscription(t, "Netflix")
	other := newSubscription(t, "Spotify")
	require.NoError(t, repo.Save(ctx, sub))
	require.NoError(t, repo.Save(ctx, other))

	deleted, err := repo.Delete(ctx, sub.ID())
	require.NoError(t, err)
	assert.True(t, deleted)

	found, err := repo.FindByID(ctx, sub.ID())
	require.NoError(t, err)
	assert.Nil(t, found)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestBlobSubscriptionRepository_DeleteMissing(t *testing.T) {
	repo, _ := setupRepo(t)

	deleted, err := repo.Delete(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.False(t, deleted)
}

func TestBlobSubscriptionRepository_CorruptBlobSurfacesError(t *testing.T) {
	repo, store := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, persistence.StorageKey, []byte("{not json")))

	_, err := repo.FindAll(ctx)
	assert.Error(t, err)
}

func TestBlobSubscriptionRepository_LoadIsIdempotent(t *testing.T) {
	repo, _ := setupRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, newSubscription(t, "Netflix")))

	first, err := repo.FindAll(ctx)
	require.NoError(t, err)
	second, err := repo.FindAll(ctx)
	require.NoError(t, err)

	require.Len(t, second, len(first))
	assert.Equal(t, first[0].ID(), second[0].ID())
	assert.Equal(t, first[0].Name(), second[0].Name())
}
