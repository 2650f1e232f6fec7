package contract

import (
	"context"

	"stayhub/internal/domain/entity"
)

// IBookingRepository is the CRUD surface over the bookings collection.
type IBookingRepository interface {
	GetAll(ctx context.Context) []entity.Booking
	GetByID(ctx context.Context, id string) *entity.Booking
	GetByUserID(ctx context.Context, userID string) []entity.Booking
	// GetByHomestayIDs returns bookings whose homestay is in the given
	// set; the host join composes this with IHomestayRepository.GetByHostID.
	GetByHomestayIDs(ctx context.Context, homestayIDs []string) []entity.Booking
	Create(ctx context.Context, booking entity.Booking) entity.Booking
	Update(ctx context.Context, id string, patch map[string]interface{}) *entity.Booking
	Delete(ctx context.Context, id string) bool
}
