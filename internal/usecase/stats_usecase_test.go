package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"stayhub/internal/domain/entity"
	"stayhub/internal/infrastructure/logger"
	kvrepo "stayhub/internal/infrastructure/repository/kv"
	"stayhub/internal/infrastructure/seed"
	"stayhub/internal/infrastructure/store"
	"stayhub/internal/infrastructure/uuidgen"
	"stayhub/internal/usecase"
	usecasecontract "stayhub/internal/usecase/contract"
)

func TestStatsUsecase_OverviewCountsSeededData(t *testing.T) {
	ctx := context.Background()
	kv := store.NewMemoryStore(logger.NewStdLogger())
	seed.Initialize(ctx, kv, logger.NewStdLogger())

	gen := uuidgen.NewGenerator()
	userRepo := kvrepo.NewUserRepository(kv, gen)
	homestayRepo := kvrepo.NewHomestayRepository(kv, gen)
	bookingRepo := kvrepo.NewBookingRepository(kv, gen)
	attractionRepo := kvrepo.NewAttractionRepository(kv, gen)
	uc := usecase.NewStatsUsecase(userRepo, homestayRepo, bookingRepo, attractionRepo)

	assert.Equal(t, usecasecontract.PlatformStats{
		TotalUsers:       1,
		TotalHomestays:   2,
		TotalBookings:    0,
		TotalAttractions: 2,
	}, uc.Overview(ctx))

	bookingRepo.Create(ctx, entity.Booking{UserID: "u-1", HomestayID: "1"})
	assert.Equal(t, 1, uc.Overview(ctx).TotalBookings)
}
