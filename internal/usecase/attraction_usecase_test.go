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

func newAttractionUsecase() *usecase.AttractionUsecase {
	kv := store.NewMemoryStore(logger.NewStdLogger())
	repo := kvrepo.NewAttractionRepository(kv, uuidgen.NewGenerator())
	return usecase.NewAttractionUsecase(repo, logger.NewStdLogger())
}

func TestAttractionUsecase_CreateValidatesCategory(t *testing.T) {
	ctx := context.Background()
	uc := newAttractionUsecase()

	_, err := uc.Create(ctx, "guide-1", entity.Attraction{
		Name:     "Hidden Waterfall",
		Category: "Mystery",
	})
	assert.ErrorIs(t, err, usecase.ErrInvalidCategory)

	created, err := uc.Create(ctx, "guide-1", entity.Attraction{
		Name:     "Hidden Waterfall",
		Category: "Nature",
	})
	assert.NoError(t, err)
	assert.Equal(t, "guide-1", created.GuideID)
}

func TestAttractionUsecase_UpdateRejectsBadCategoryPatch(t *testing.T) {
	ctx := context.Background()
	uc := newAttractionUsecase()
	created, _ := uc.Create(ctx, "guide-1", entity.Attraction{Name: "Old Fort", Category: "Historical"})

	guide := entity.User{ID: "guide-1", Role: entity.UserRoleGuide}
	_, err := uc.Update(ctx, guide, created.ID, map[string]interface{}{"category": "Mystery"})
	assert.ErrorIs(t, err, usecase.ErrInvalidCategory)

	updated, err := uc.Update(ctx, guide, created.ID, map[string]interface{}{"category": "Cultural"})
	assert.NoError(t, err)
	assert.Equal(t, "Cultural", updated.Category)
}

func TestAttractionUsecase_DeleteOwnership(t *testing.T) {
	ctx := context.Background()
	uc := newAttractionUsecase()
	created, _ := uc.Create(ctx, "guide-1", entity.Attraction{Name: "Old Fort", Category: "Historical"})

	other := entity.User{ID: "guide-2", Role: entity.UserRoleGuide}
	assert.ErrorIs(t, uc.Delete(ctx, other, created.ID), usecase.ErrForbidden)

	admin := entity.User{ID: "admin-1", Role: entity.UserRoleAdmin}
	assert.NoError(t, uc.Delete(ctx, admin, created.ID))
	assert.Nil(t, uc.GetByID(ctx, created.ID))
}

func TestAttractionUsecase_GetByLocation(t *testing.T) {
	ctx := context.Background()
	uc := newAttractionUsecase()
	uc.Create(ctx, "guide-1", entity.Attraction{Name: "Hadimba Temple", Location: "Manali, Himachal Pradesh", Category: "Historical"})
	uc.Create(ctx, "guide-1", entity.Attraction{Name: "Basilica of Bom Jesus", Location: "Goa", Category: "Historical"})

	assert.Len(t, uc.GetByLocation(ctx, "Goa"), 1)
	assert.Len(t, uc.GetByLocation(ctx, "Manali"), 1)
	assert.Empty(t, uc.GetByLocation(ctx, "Delhi"))
}
