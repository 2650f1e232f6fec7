package kv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"stayhub/internal/domain/entity"
	"stayhub/internal/infrastructure/logger"
	kvrepo "stayhub/internal/infrastructure/repository/kv"
	"stayhub/internal/infrastructure/store"
	"stayhub/internal/infrastructure/uuidgen"
)

func newUserRepo() *kvrepo.UserRepository {
	kv := store.NewMemoryStore(logger.NewStdLogger())
	return kvrepo.NewUserRepository(kv, uuidgen.NewGenerator())
}

func TestUserRepository_CreateThenGetByID(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo()

	created := repo.Create(ctx, entity.User{
		Email:    "host@example.com",
		Password: "secret99",
		Name:     "Host User",
		Role:     entity.UserRoleHost,
		Phone:    "9876543210",
	})
	assert.NotEmpty(t, created.ID)
	assert.False(t, created.CreatedAt.IsZero())

	got := repo.GetByID(ctx, created.ID)
	assert.NotNil(t, got)
	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "host@example.com", got.Email)
	assert.Equal(t, "secret99", got.Password)
	assert.Equal(t, "Host User", got.Name)
	assert.Equal(t, entity.UserRoleHost, got.Role)
	assert.Equal(t, "9876543210", got.Phone)
	assert.True(t, created.CreatedAt.Equal(got.CreatedAt))
}

func TestUserRepository_GetByEmail_CaseSensitive(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo()
	repo.Create(ctx, entity.User{Email: "Guest@Example.com"})

	assert.NotNil(t, repo.GetByEmail(ctx, "Guest@Example.com"))
	assert.Nil(t, repo.GetByEmail(ctx, "guest@example.com"))
}

func TestUserRepository_UpdateAbsentID(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo()
	repo.Create(ctx, entity.User{Email: "a@b.co", Name: "A"})

	updated := repo.Update(ctx, "no-such-id", map[string]interface{}{"name": "B"})
	assert.Nil(t, updated)

	users := repo.GetAll(ctx)
	assert.Len(t, users, 1)
	assert.Equal(t, "A", users[0].Name)
}

func TestUserRepository_UpdateShallowMerge(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo()
	created := repo.Create(ctx, entity.User{
		Email: "a@b.co",
		Name:  "Before",
		Phone: "1234567890",
		Role:  entity.UserRoleTourist,
	})

	updated := repo.Update(ctx, created.ID, map[string]interface{}{"name": "After"})
	assert.NotNil(t, updated)
	assert.Equal(t, "After", updated.Name)
	// Unspecified fields are retained.
	assert.Equal(t, "a@b.co", updated.Email)
	assert.Equal(t, "1234567890", updated.Phone)
	assert.Equal(t, entity.UserRoleTourist, updated.Role)
}

func TestUserRepository_DeleteIdempotent(t *testing.T) {
	ctx := context.Background()
	repo := newUserRepo()
	created := repo.Create(ctx, entity.User{Email: "a@b.co"})
	repo.Create(ctx, entity.User{Email: "c@d.co"})

	assert.True(t, repo.Delete(ctx, created.ID))
	first := repo.GetAll(ctx)

	assert.True(t, repo.Delete(ctx, created.ID))
	second := repo.GetAll(ctx)

	assert.Equal(t, first, second)
	assert.Len(t, second, 1)
}
