package usecase

import (
	"context"

	"stayhub/internal/domain/contract"
	usecasecontract "stayhub/internal/usecase/contract"
)

// StatsUsecase aggregates platform-wide counts for the admin dashboard.
type StatsUsecase struct {
	users       contract.IUserRepository
	homestays   contract.IHomestayRepository
	bookings    contract.IBookingRepository
	attractions contract.IAttractionRepository
}

var _ usecasecontract.IStatsUsecase = (*StatsUsecase)(nil)

func NewStatsUsecase(
	users contract.IUserRepository,
	homestays contract.IHomestayRepository,
	bookings contract.IBookingRepository,
	attractions contract.IAttractionRepository,
) *StatsUsecase {
	return &StatsUsecase{
		users:       users,
		homestays:   homestays,
		bookings:    bookings,
		attractions: attractions,
	}
}

// Overview recounts every collection on each call.
func (uc *StatsUsecase) Overview(ctx context.Context) usecasecontract.PlatformStats {
	return usecasecontract.PlatformStats{
		TotalUsers:       len(uc.users.GetAll(ctx)),
		TotalHomestays:   len(uc.homestays.GetAll(ctx)),
		TotalBookings:    len(uc.bookings.GetAll(ctx)),
		TotalAttractions: len(uc.attractions.GetAll(ctx)),
	}
}
