package contract

import (
	"context"

	"stayhub/internal/domain/entity"
)

// BookingInput is what a tourist submits from the booking form.
type BookingInput struct {
	HomestayID string
	GuestName  string
	GuestEmail string
	CheckIn    string
	CheckOut   string
	Guests     int
}

// IBookingUsecase covers reservation creation, the host-side join and
// status transitions.
type IBookingUsecase interface {
	GetAll(ctx context.Context) []entity.Booking
	GetByID(ctx context.Context, id string) *entity.Booking
	GetByUserID(ctx context.Context, userID string) []entity.Booking
	// GetByHostID resolves bookings transitively through the host's own
	// listings.
	GetByHostID(ctx context.Context, hostID string) []entity.Booking
	// Create prices the stay at nights times the homestay rate and
	// starts it pending.
	Create(ctx context.Context, userID string, input BookingInput) (*entity.Booking, error)
	// UpdateStatus moves a pending booking to confirmed or cancelled;
	// terminal bookings reject further transitions.
	UpdateStatus(ctx context.Context, actor entity.User, id string, status entity.BookingStatus) (*entity.Booking, error)
	// HostRevenue sums TotalPrice over the host's confirmed bookings,
	// recomputed on every call.
	HostRevenue(ctx context.Context, hostID string) float64
}
