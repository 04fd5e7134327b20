package commands

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

func strPtr(s string) *string     { return &s }
func floatPtr(f float64) *float64 { return &f }

func testSubscription(t *testing.T) *domain.Subscription {
	t.Helper()
	sub, err := domain.NewSubscription(
		"Netflix", 15.49, domain.CycleMonthly, "Streaming",
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Now(),
	)
	require.NoError(t, err)
	return sub
}

func TestUpdateSubscriptionHandler_PartialUpdate(t *testing.T) {
	sub := testSubscription(t)

	repo := new(mockSubscriptionRepo)
	repo.On("FindByID", mock.Anything, sub.ID()).Return(sub, nil)
	repo.On("Save", mock.Anything, sub).Return(nil)

	handler := NewUpdateSubscriptionHandler(repo)

	result, err := handler.Handle(context.Background(), UpdateSubscriptionCommand{
		SubscriptionID: sub.ID(),
		Price:          floatPtr(17.99),
		Notes:          strPtr("price hike again"),
	})

	require.NoError(t, err)
	assert.Equal(t, sub.ID(), result.SubscriptionID)
	assert.Equal(t, 17.99, sub.Price())
	assert.Equal(t, "price hike again", sub.Notes())
	// Untouched fields stay as they were
	assert.Equal(t, "Netflix", sub.Name())
	assert.Equal(t, domain.CycleMonthly, sub.Cycle())
	repo.AssertExpectations(t)
}

func TestUpdateSubscriptionHandler_CycleChangeRecomputesBilling(t *testing.T) {
	sub := testSubscription(t)
	before := sub.NextBillingDate()

	repo := new(mockSubscriptionRepo)
	repo.On("FindByID", mock.Anything, sub.ID()).Return(sub, nil)
	repo.On("Save", mock.Anything, sub).Return(nil)

	handler := NewUpdateSubscriptionHandler(repo)

	result, err := handler.Handle(context.Background(), UpdateSubscriptionCommand{
		SubscriptionID: sub.ID(),
		Cycle:          strPtr("yearly"),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.CycleYearly, sub.Cycle())
	assert.NotEqual(t, before, result.NextBillingDate)
}

func TestUpdateSubscriptionHandler_NotFound(t *testing.T) {
	repo := new(mockSubscriptionRepo)
	repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, nil)

	handler := NewUpdateSubscriptionHandler(repo)

	_, err := handler.Handle(context.Background(), UpdateSubscriptionCommand{
		SubscriptionID: uuid.New(),
		Name:           strPtr("Ghost"),
	})

	assert.ErrorIs(t, err, domain.ErrSubscriptionNotFound)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}

func TestUpdateSubscriptionHandler_InvalidField(t *testing.T) {
	sub := testSubscription(t)

	repo := new(mockSubscriptionRepo)
	repo.On("FindByID", mock.Anything, sub.ID()).Return(sub, nil)

	handler := NewUpdateSubscriptionHandler(repo)

	_, err := handler.Handle(context.Background(), UpdateSubscriptionCommand{
		SubscriptionID: sub.ID(),
		Price:          floatPtr(0),
	})

	assert.ErrorIs(t, err, domain.ErrSubscriptionInvalidPrice)
	repo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
}
