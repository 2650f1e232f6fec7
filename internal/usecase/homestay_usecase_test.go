package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"stayhub/internal/domain/entity"
	"stayhub/internal/infrastructure/logger"
	kvrepo "stayhub/internal/infrastructure/repository/kv"
	"stayhub/internal/infrastructure/store"
	"stayhub/internal/infrastructure/uuidgen"
	"stayhub/internal/usecase"
)

func newHomestayUsecase() *usecase.HomestayUsecase {
	kv := store.NewMemoryStore(logger.NewStdLogger())
	repo := kvrepo.NewHomestayRepository(kv, uuidgen.NewGenerator())
	return usecase.NewHomestayUsecase(repo, logger.NewStdLogger())
}

func TestHomestayUsecase_SearchAvailableOnly(t *testing.T) {
	ctx := context.Background()
	uc := newHomestayUsecase()
	uc.Create(ctx, "host-1", entity.Homestay{Title: "Goa Beach House", Location: "Goa", Available: true})
	uc.Create(ctx, "host-1", entity.Homestay{Title: "Goa Villa", Location: "Goa", Available: false})

	assert.Len(t, uc.Search(ctx, "goa", false), 2)

	available := uc.Search(ctx, "goa", true)
	assert.Len(t, available, 1)
	assert.Equal(t, "Goa Beach House", available[0].Title)
}

func TestHomestayUsecase_CreateAssignsHost(t *testing.T) {
	ctx := context.Background()
	uc := newHomestayUsecase()

	created := uc.Create(ctx, "host-1", entity.Homestay{Title: "Retreat", HostID: "spoofed"})
	assert.Equal(t, "host-1", created.HostID)
}

func TestHomestayUsecase_UpdateOwnership(t *testing.T) {
	ctx := context.Background()
	uc := newHomestayUsecase()
	created := uc.Create(ctx, "host-1", entity.Homestay{Title: "Retreat", Available: true})

	owner := entity.User{ID: "host-1", Role: entity.UserRoleHost}
	stranger := entity.User{ID: "host-2", Role: entity.UserRoleHost}
	admin := entity.User{ID: "admin-1", Role: entity.UserRoleAdmin}

	_, err := uc.Update(ctx, stranger, created.ID, map[string]interface{}{"available": false})
	assert.ErrorIs(t, err, usecase.ErrForbidden)

	updated, err := uc.Update(ctx, owner, created.ID, map[string]interface{}{"available": false})
	assert.NoError(t, err)
	assert.False(t, updated.Available)

	updated, err = uc.Update(ctx, admin, created.ID, map[string]interface{}{"available": true})
	assert.NoError(t, err)
	assert.True(t, updated.Available)

	_, err = uc.Update(ctx, admin, "missing", map[string]interface{}{"available": true})
	assert.ErrorIs(t, err, usecase.ErrNotFound)
}

func TestHomestayUsecase_DeleteOwnership(t *testing.T) {
	ctx := context.Background()
	uc := newHomestayUsecase()
	created := uc.Create(ctx, "host-1", entity.Homestay{Title: "Retreat"})

	stranger := entity.User{ID: "host-2", Role: entity.UserRoleHost}
	assert.ErrorIs(t, uc.Delete(ctx, stranger, created.ID), usecase.ErrForbidden)
	assert.NotNil(t, uc.GetByID(ctx, created.ID))

	owner := entity.User{ID: "host-1", Role: entity.UserRoleHost}
	assert.NoError(t, uc.Delete(ctx, owner, created.ID))
	assert.Nil(t, uc.GetByID(ctx, created.ID))

	assert.ErrorIs(t, uc.Delete(ctx, owner, created.ID), usecase.ErrNotFound)
}
