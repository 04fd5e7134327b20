package queries

import (
	"context"
	"testing"
	"time"

	"github.com/felixgeelhaar/launchkit/internal/subscriptions/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockSubscriptionRepo is a mock implementation of domain.Repository.
type mockSubscriptionRepo struct {
	mock.Mock
}

func (m *mockSubscriptionRepo) Save(ctx context.Context, sub *domain.Subscription) error {
	args := m.Called(ctx, sub)
	return args.Error(0)
}

func (m *mockSubscriptionRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Subscription, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepo) FindAll(ctx context.Context) ([]*domain.Subscription, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Subscription), args.Error(1)
}

func (m *mockSubscriptionRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// rehydratedSubscription builds a subscription with full control over the
// persisted fields, the way the blob repository would.
func rehydratedSubscription(name string, price float64, cycle domain.BillingCycle, category string, nextBilling time.Time) *domain.Subscription {
	now := time.Now().UTC()
	return domain.RehydrateSubscription(
		uuid.New(), name, price, cycle, category,
		now.AddDate(0, -6, 0), nextBilling,
		"", "", "", "", false,
		now, now,
	)
}

func TestListSubscriptionsHandler_All(t *testing.T) {
	subs := []*domain.Subscription{
		rehydratedSubscription("Netflix", 15.49, domain.CycleMonthly, "Streaming", time.Now().AddDate(0, 0, 10)),
		rehydratedSubscription("Spotify", 10.99, domain.CycleMonthly, "Music", time.Now().AddDate(0, 0, 20)),
	}

	repo := new(mockSubscriptionRepo)
	repo.On("FindAll", mock.Anything).Return(subs, nil)

	handler := NewListSubscriptionsHandler(repo)

	dtos, err := handler.Handle(context.Background(), ListSubscriptionsQuery{})

	require.NoError(t, err)
	require.Len(t, dtos, 2)
	assert.Equal(t, "Netflix", dtos[0].Name)
	assert.Equal(t, "Spotify", dtos[1].Name)
	assert.InDelta(t, 15.49, dtos[0].MonthlyAmount, 1e-9)
}

func TestListSubscriptionsHandler_CategoryFilter(t *testing.T) {
	subs := []*domain.Subscription{
		rehydratedSubscription("Netflix", 15.49, domain.CycleMonthly, "Streaming", time.Now().AddDate(0, 0, 10)),
		rehydratedSubscription("Spotify", 10.99, domain.CycleMonthly, "Music", time.Now().AddDate(0, 0, 20)),
	}

	repo := new(mockSubscriptionRepo)
	repo.On("FindAll", mock.Anything).Return(subs, nil)

	handler := NewListSubscriptionsHandler(repo)

	dtos, err := handler.Handle(context.Background(), ListSubscriptionsQuery{Category: "Music"})

	require.NoError(t, err)
	require.Len(t, dtos, 1)
	assert.Equal(t, "Spotify", dtos[0].Name)
}

func TestListSubscriptionsHandler_Empty(t *testing.T) {
	repo := new(mockSubscriptionRepo)
	repo.On("FindAll", mock.Anything).Return([]*domain.Subscription{}, nil)

	handler := NewListSubscriptionsHandler(repo)

	dtos, err := handler.Handle(context.Background(), ListSubscriptionsQuery{})

	require.NoError(t, err)
	assert.Empty(t, dtos)
}
