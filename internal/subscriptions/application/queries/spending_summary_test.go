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

func TestSpendingSummaryHandler_SingleYearly(t *testing.T) {
	subs := []*domain.Subscription{
		rehydratedSubscription("Backup Service", 120, domain.CycleYearly, "Storage", time.Now().AddDate(0, 1, 0)),
	}

	repo := new(mockSubscriptionRepo)
	repo.On("FindAll", mock.Anything).Return(subs, nil)

	handler := NewSpendingSummaryHandler(repo)

	summary, err := handler.Handle(context.Background(), SpendingSummaryQuery{})

	require.NoError(t, err)
	assert.InDelta(t, 10, summary.MonthlyTotal, 1e-9)
	assert.InDelta(t, 120, summary.YearlyTotal, 1e-9)
	assert.Equal(t, 1, summary.Count)
}

func TestSpendingSummaryHandler_MixedCycles(t *testing.T) {
	next := time.Now().AddDate(0, 1, 0)
	subs := []*domain.Subscription{
		rehydratedSubscription("Netflix", 15, domain.CycleMonthly, "Streaming", next),
		rehydratedSubscription("Hulu", 9, domain.CycleMonthly, "Streaming", next),
		rehydratedSubscription("Paper", 10, domain.CycleWeekly, "News", next),
		rehydratedSubscription("Domain", 36, domain.CycleQuarterly, "Software", next),
	}

	repo := new(mockSubscriptionRepo)
	repo.On("FindAll", mock.Anything).Return(subs, nil)

	handler := NewSpendingSummaryHandler(repo)

	summary, err := handler.Handle(context.Background(), SpendingSummaryQuery{})

	require.NoError(t, err)
	// 15 + 9 + 10*4.33 + 36/3
	assert.InDelta(t, 79.3, summary.MonthlyTotal, 1e-9)
	// 15*12 + 9*12 + 10*52 + 36*4
	assert.InDelta(t, 952, summary.YearlyTotal, 1e-9)
	assert.InDelta(t, 24, summary.MonthlyByCategory["Streaming"], 1e-9)
	assert.InDelta(t, 43.3, summary.MonthlyByCategory["News"], 1e-9)
	assert.InDelta(t, 12, summary.MonthlyByCategory["Software"], 1e-9)
}

func TestSpendingSummaryHandler_CategoryKeysNotCanonicalized(t *testing.T) {
	next := time.Now().AddDate(0, 1, 0)
	subs := []*domain.Subscription{
		rehydratedSubscription("A", 10, domain.CycleMonthly, "streaming", next),
		rehydratedSubscription("B", 10, domain.CycleMonthly, "Streaming", next),
	}

	repo := new(mockSubscriptionRepo)
	repo.On("FindAll", mock.Anything).Return(subs, nil)

	handler := NewSpendingSummaryHandler(repo)

	summary, err := handler.Handle(context.Background(), SpendingSummaryQuery{})

	require.NoError(t, err)
	// Differently-cased labels stay separate buckets
	assert.Len(t, summary.MonthlyByCategory, 2)
}

func TestSpendingSummaryHandler_Empty(t *testing.T) {
	repo := new(mockSubscriptionRepo)
	repo.On("FindAll", mock.Anything).Return([]*domain.Subscription{}, nil)

	handler := NewSpendingSummaryHandler(repo)

	summary, err := handler.Handle(context.Background(), SpendingSummaryQuery{})

	require.NoError(t, err)
	assert.Zero(t, summary.MonthlyTotal)
	assert.Zero(t, summary.YearlyTotal)
	assert.Empty(t, summary.MonthlyByCategory)
}
