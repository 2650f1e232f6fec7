package usecase

import (
	"context"
	"fmt"

	"stayhub/internal/domain/contract"
	"stayhub/internal/domain/entity"
	"stayhub/internal/infrastructure/validator"
	usecasecontract "stayhub/internal/usecase/contract"
)

// BookingUsecase implements reservation creation, the host-side join
// and status transitions.
type BookingUsecase struct {
	bookings  contract.IBookingRepository
	homestays contract.IHomestayRepository
	logger    usecasecontract.IAppLogger
}

var _ usecasecontract.IBookingUsecase = (*BookingUsecase)(nil)

func NewBookingUsecase(
	bookings contract.IBookingRepository,
	homestays contract.IHomestayRepository,
	logger usecasecontract.IAppLogger,
) *BookingUsecase {
	return &BookingUsecase{bookings: bookings, homestays: homestays, logger: logger}
}

func (uc *BookingUsecase) GetAll(ctx context.Context) []entity.Booking {
	return uc.bookings.GetAll(ctx)
}

func (uc *BookingUsecase) GetByID(ctx context.Context, id string) *entity.Booking {
	return uc.bookings.GetByID(ctx, id)
}

func (uc *BookingUsecase) GetByUserID(ctx context.Context, userID string) []entity.Booking {
	return uc.bookings.GetByUserID(ctx, userID)
}

// GetByHostID resolves bookings through the host's own listings — the
// only cross-entity join in the system.
func (uc *BookingUsecase) GetByHostID(ctx context.Context, hostID string) []entity.Booking {
	homestays := uc.homestays.GetByHostID(ctx, hostID)
	ids := make([]string, 0, len(homestays))
	for _, h := range homestays {
		ids = append(ids, h.ID)
	}
	return uc.bookings.GetByHomestayIDs(ctx, ids)
}

// Create prices the stay at nights times the homestay rate and starts
// it pending. The homestay is looked up for the price and the capacity
// rule; the stored HomestayID itself stays an unenforced reference.
func (uc *BookingUsecase) Create(ctx context.Context, userID string, input usecasecontract.BookingInput) (*entity.Booking, error) {
	homestay := uc.homestays.GetByID(ctx, input.HomestayID)
	if homestay == nil {
		return nil, ErrNotFound
	}
	if msg := validator.DateRange(input.CheckIn, input.CheckOut); msg != "" {
		return nil, fmt.Errorf("%w: %s", ErrInvalidDateRange, msg)
	}
	if input.Guests <= 0 {
		return nil, ErrInvalidGuests
	}
	if input.Guests > homestay.Capacity {
		return nil, fmt.Errorf("%w: maximum %d guests allowed", ErrCapacityExceeded, homestay.Capacity)
	}

	nights := entity.Nights(input.CheckIn, input.CheckOut)
	booking := uc.bookings.Create(ctx, entity.Booking{
		UserID:     userID,
		HomestayID: input.HomestayID,
		GuestName:  input.GuestName,
		GuestEmail: input.GuestEmail,
		CheckIn:    input.CheckIn,
		CheckOut:   input.CheckOut,
		Guests:     input.Guests,
		TotalPrice: float64(nights) * homestay.Price,
		Status:     entity.BookingStatusPending,
	})
	uc.logger.Infof("booking %s created for homestay %s (%d nights)", booking.ID, booking.HomestayID, nights)
	return &booking, nil
}

// UpdateStatus moves a pending booking to confirmed or cancelled. The
// acting user must host the booked homestay or be an admin. Terminal
// states never transition again.
func (uc *BookingUsecase) UpdateStatus(ctx context.Context, actor entity.User, id string, status entity.BookingStatus) (*entity.Booking, error) {
	if status != entity.BookingStatusConfirmed && status != entity.BookingStatusCancelled {
		return nil, ErrInvalidTransition
	}
	booking := uc.bookings.GetByID(ctx, id)
	if booking == nil {
		return nil, ErrNotFound
	}
	if booking.Status.Terminal() {
		return nil, ErrBookingFinalized
	}
	if actor.Role != entity.UserRoleAdmin {
		homestay := uc.homestays.GetByID(ctx, booking.HomestayID)
		if homestay == nil || homestay.HostID != actor.ID {
			return nil, ErrForbidden
		}
	}
	updated := uc.bookings.Update(ctx, id, map[string]interface{}{"status": string(status)})
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// HostRevenue sums TotalPrice over the host's confirmed bookings. It is
// recomputed on every call rather than maintained incrementally.
func (uc *BookingUsecase) HostRevenue(ctx context.Context, hostID string) float64 {
	var revenue float64
	for _, b := range uc.GetByHostID(ctx, hostID) {
		if b.Status == entity.BookingStatusConfirmed {
			revenue += b.TotalPrice
		}
	}
	return revenue
}
