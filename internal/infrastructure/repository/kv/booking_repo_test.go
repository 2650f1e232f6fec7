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

func newBookingRepo() *kvrepo.BookingRepository {
	kv := store.NewMemoryStore(logger.NewStdLogger())
	return kvrepo.NewBookingRepository(kv, uuidgen.NewGenerator())
}

func TestBookingRepository_GetByUserID(t *testing.T) {
	ctx := context.Background()
	repo := newBookingRepo()
	repo.Create(ctx, entity.Booking{UserID: "u-1", HomestayID: "h-1"})
	repo.Create(ctx, entity.Booking{UserID: "u-2", HomestayID: "h-1"})
	repo.Create(ctx, entity.Booking{UserID: "u-1", HomestayID: "h-2"})

	mine := repo.GetByUserID(ctx, "u-1")
	assert.Len(t, mine, 2)
	assert.Empty(t, repo.GetByUserID(ctx, "u-3"))
}

func TestBookingRepository_GetByHomestayIDs(t *testing.T) {
	ctx := context.Background()
	repo := newBookingRepo()
	repo.Create(ctx, entity.Booking{UserID: "u-1", HomestayID: "h-1"})
	repo.Create(ctx, entity.Booking{UserID: "u-2", HomestayID: "h-2"})
	repo.Create(ctx, entity.Booking{UserID: "u-3", HomestayID: "h-3"})

	matched := repo.GetByHomestayIDs(ctx, []string{"h-1", "h-3"})
	assert.Len(t, matched, 2)

	assert.Empty(t, repo.GetByHomestayIDs(ctx, nil))
	assert.Empty(t, repo.GetByHomestayIDs(ctx, []string{"h-9"}))
}

func TestBookingRepository_UpdateStatusPatch(t *testing.T) {
	ctx := context.Background()
	repo := newBookingRepo()
	created := repo.Create(ctx, entity.Booking{
		UserID:     "u-1",
		HomestayID: "h-1",
		TotalPrice: 5000,
		Status:     entity.BookingStatusPending,
	})

	updated := repo.Update(ctx, created.ID, map[string]interface{}{"status": "confirmed"})
	assert.NotNil(t, updated)
	assert.Equal(t, entity.BookingStatusConfirmed, updated.Status)
	assert.Equal(t, 5000.0, updated.TotalPrice)
}
