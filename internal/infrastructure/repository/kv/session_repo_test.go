package kv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"stayhub/internal/domain/entity"
	"stayhub/internal/infrastructure/logger"
	kvrepo "stayhub/internal/infrastructure/repository/kv"
	"stayhub/internal/infrastructure/store"
)

func TestSessionRepository_SetGetClear(t *testing.T) {
	ctx := context.Background()
	repo := kvrepo.NewSessionRepository(store.NewMemoryStore(logger.NewStdLogger()))

	assert.Nil(t, repo.Current(ctx))

	user := entity.User{ID: "u-1", Email: "guest@example.com", Role: entity.UserRoleTourist}
	assert.True(t, repo.SetCurrent(ctx, user))

	current := repo.Current(ctx)
	assert.NotNil(t, current)
	assert.Equal(t, "u-1", current.ID)
	assert.Equal(t, entity.UserRoleTourist, current.Role)

	assert.True(t, repo.ClearCurrent(ctx))
	assert.Nil(t, repo.Current(ctx))

	// Clearing an absent session is fine.
	assert.True(t, repo.ClearCurrent(ctx))
}

func TestSessionRepository_OverwriteReplacesSnapshot(t *testing.T) {
	ctx := context.Background()
	repo := kvrepo.NewSessionRepository(store.NewMemoryStore(logger.NewStdLogger()))

	repo.SetCurrent(ctx, entity.User{ID: "u-1"})
	repo.SetCurrent(ctx, entity.User{ID: "u-2"})

	assert.Equal(t, "u-2", repo.Current(ctx).ID)
}
