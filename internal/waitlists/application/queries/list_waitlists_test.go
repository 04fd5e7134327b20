package queries

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/felixgeelhaar/launchkit/internal/waitlists/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// mockWaitlistRepo is a mock implementation of domain.Repository.
type mockWaitlistRepo struct {
	mock.Mock
}

func (m *mockWaitlistRepo) Save(ctx context.Context, wl *domain.Waitlist) error {
	args := m.Called(ctx, wl)
	return args.Error(0)
}

func (m *mockWaitlistRepo) FindByID(ctx context.Context, id uuid.UUID) (*domain.Waitlist, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Waitlist), args.Error(1)
}

func (m *mockWaitlistRepo) FindByIDOrSlug(ctx context.Context, idOrSlug string) (*domain.Waitlist, error) {
	args := m.Called(ctx, idOrSlug)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Waitlist), args.Error(1)
}

func (m *mockWaitlistRepo) FindAll(ctx context.Context) ([]*domain.Waitlist, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Waitlist), args.Error(1)
}

func (m *mockWaitlistRepo) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}

// rehydratedWaitlist builds a waitlist with fixed identity for query tests.
func rehydratedWaitlist(name, slug string, subscribers []*domain.Subscriber) *domain.Waitlist {
	return domain.RehydrateWaitlist(
		uuid.New(),
		name,
		"",
		slug,
		domain.DefaultSettings(),
		subscribers,
		time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	)
}

func rehydratedSubscriber(email, code, referredBy string, count, position int, createdAt time.Time) *domain.Subscriber {
	return domain.RehydrateSubscriber(uuid.New(), email, code, referredBy, count, position, createdAt)
}

func TestListWaitlistsHandler(t *testing.T) {
	lists := []*domain.Waitlist{
		rehydratedWaitlist("Beta", "beta", []*domain.Subscriber{
			rehydratedSubscriber("a@example.com", "AAAAAA", "", 0, 1, time.Now()),
			rehydratedSubscriber("b@example.com", "BBBBBB", "AAAAAA", 0, 2, time.Now()),
		}),
		rehydratedWaitlist("Launch", "launch", nil),
	}

	repo := new(mockWaitlistRepo)
	repo.On("FindAll", mock.Anything).Return(lists, nil)

	handler := NewListWaitlistsHandler(repo)

	dtos, err := handler.Handle(context.Background(), ListWaitlistsQuery{})

	require.NoError(t, err)
	require.Len(t, dtos, 2)
	assert.Equal(t, "Beta", dtos[0].Name)
	assert.Equal(t, 2, dtos[0].SubscriberCount)
	assert.Equal(t, "launch", dtos[1].Slug)
	assert.Zero(t, dtos[1].SubscriberCount)
}

func TestListWaitlistsHandler_Empty(t *testing.T) {
	repo := new(mockWaitlistRepo)
	repo.On("FindAll", mock.Anything).Return([]*domain.Waitlist{}, nil)

	handler := NewListWaitlistsHandler(repo)

	dtos, err := handler.Handle(context.Background(), ListWaitlistsQuery{})

	require.NoError(t, err)
	assert.Empty(t, dtos)
}

func TestListWaitlistsHandler_RepoError(t *testing.T) {
	repo := new(mockWaitlistRepo)
	repo.On("FindAll", mock.Anything).Return(nil, errors.New("read failed"))

	handler := NewListWaitlistsHandler(repo)

	_, err := handler.Handle(context.Background(), ListWaitlistsQuery{})

	assert.Error(t, err)
}
