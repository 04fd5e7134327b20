package commands

import (
	"context"
	"testing"

	"github.com/felixgeelhaar/launchkit/internal/waitlists/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteWaitlistHandler_Success(t *testing.T) {
	wl := rehydratedWaitlist("beta", nil)

	repo := new(mockWaitlistRepo)
	repo.On("FindByIDOrSlug", mock.Anything, "beta").Return(wl, nil)
	repo.On("Delete", mock.Anything, wl.ID()).Return(true, nil)

	handler := NewDeleteWaitlistHandler(repo)

	result, err := handler.Handle(context.Background(), DeleteWaitlistCommand{
		WaitlistIDOrSlug: "beta",
	})

	require.NoError(t, err)
	assert.True(t, result.Deleted)
	repo.AssertExpectations(t)
}

func TestDeleteWaitlistHandler_NotFound(t *testing.T) {
	repo := new(mockWaitlistRepo)
	repo.On("FindByIDOrSlug", mock.Anything, "missing").Return(nil, nil)

	handler := NewDeleteWaitlistHandler(repo)

	_, err := handler.Handle(context.Background(), DeleteWaitlistCommand{
		WaitlistIDOrSlug: "missing",
	})

	assert.ErrorIs(t, err, domain.ErrWaitlistNotFound)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
