package domain_test

import (
	"testing"
	"time"

	"github.com/felixgeelhaar/launchkit/internal/shared/domain"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewBaseEntity(t *testing.T) {
	entity := domain.NewBaseEntity()

	assert.NotEqual(t, uuid.Nil, entity.ID())
	assert.False(t, entity.CreatedAt().IsZero())
	assert.Equal(t, entity.CreatedAt(), entity.UpdatedAt())
}

func TestNewBaseEntityAt(t *testing.T) {
	at := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	entity := domain.NewBaseEntityAt(at)

	assert.NotEqual(t, uuid.Nil, entity.ID())
	assert.Equal(t, at, entity.CreatedAt())
	assert.Equal(t, at, entity.UpdatedAt())
}

func TestRehydrateBaseEntity(t *testing.T) {
	id := uuid.New()
	createdAt := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	updatedAt := time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	entity := domain.RehydrateBaseEntity(id, createdAt, updatedAt)

	assert.Equal(t, id, entity.ID())
	assert.Equal(t, createdAt, entity.CreatedAt())
	assert.Equal(t, updatedAt, entity.UpdatedAt())
}

func TestBaseEntity_Touch(t *testing.T) {
	entity := domain.RehydrateBaseEntity(uuid.New(), time.Now().UTC().Add(-time.Hour), time.Now().UTC().Add(-time.Hour))
	before := entity.UpdatedAt()

	entity.Touch()

	assert.True(t, entity.UpdatedAt().After(before))
	assert.Equal(t, entity.CreatedAt().Add(0), entity.CreatedAt())
}
