package queries

import (
	"context"
	"testing"
	"time"

	"github.com/felixgeelhaar/launchkit/internal/subscriptions/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpcomingRenewalsHandler_WindowBoundaries(t *testing.T) {
	now := time.Now()
	// The cutoff is a fixed duration, so boundary fixtures use Add rather
	// than AddDate to stay stable across DST transitions.
	subs := []*domain.Subscription{
		rehydratedSubscription("EightDaysOut", 10, domain.CycleMonthly, "Other", now.Add(8*24*time.Hour)),
		rehydratedSubscription("SevenDaysOut", 10, domain.CycleMonthly, "Other", now.Add(7*24*time.Hour-time.Minute)),
		rehydratedSubscription("Tomorrow", 10, domain.CycleMonthly, "Other", now.Add(24*time.Hour)),
		rehydratedSubscription("Yesterday", 10, domain.CycleMonthly, "Other", now.Add(-24*time.Hour)),
	}

	repo := new(mockSubscriptionRepo)
	repo.On("FindAll", mock.Anything).Return(subs, nil)

	handler := NewUpcomingRenewalsHandler(repo)

	dtos, err := handler.Handle(context.Background(), UpcomingRenewalsQuery{DaysAhead: 7})

	require.NoError(t, err)
	require.Len(t, dtos, 2)
	// Sorted ascending by next billing date
	assert.Equal(t, "Tomorrow", dtos[0].Name)
	assert.Equal(t, "SevenDaysOut", dtos[1].Name)
}

func TestUpcomingRenewalsHandler_DefaultsToSevenDays(t *testing.T) {
	now := time.Now()
	subs := []*domain.Subscription{
		rehydratedSubscription("InWindow", 10, domain.CycleMonthly, "Other", now.AddDate(0, 0, 3)),
		rehydratedSubscription("OutOfWindow", 10, domain.CycleMonthly, "Other", now.AddDate(0, 0, 30)),
	}

	repo := new(mockSubscriptionRepo)
	repo.On("FindAll", mock.Anything).Return(subs, nil)

	handler := NewUpcomingRenewalsHandler(repo)

	dtos, err := handler.Handle(context.Background(), UpcomingRenewalsQuery{})

	require.NoError(t, err)
	require.Len(t, dtos, 1)
	assert.Equal(t, "InWindow", dtos[0].Name)
}

func TestUpcomingRenewalsHandler_Empty(t *testing.T) {
	repo := new(mockSubscriptionRepo)
	repo.On("FindAll", mock.Anything).Return([]*domain.Subscription{}, nil)

	handler := NewUpcomingRenewalsHandler(repo)

	dtos, err := handler.Handle(context.Background(), UpcomingRenewalsQuery{DaysAhead: 7})

	require.NoError(t, err)
	assert.Empty(t, dtos)
}
