package kv

import (
	"context"
	"time"

	"stayhub/internal/domain/contract"
	"stayhub/internal/domain/entity"
	"stayhub/internal/infrastructure/store"
)

type BookingRepository struct {
	store contract.KVStore
	ids   contract.IUUIDGenerator
}

var _ contract.IBookingRepository = (*BookingRepository)(nil)

func NewBookingRepository(kv contract.KVStore, ids contract.IUUIDGenerator) *BookingRepository {
	return &BookingRepository{store: kv, ids: ids}
}

func (r *BookingRepository) GetAll(ctx context.Context) []entity.Booking {
	return loadAll[entity.Booking](ctx, r.store, store.KeyBookings)
}

func (r *BookingRepository) GetByID(ctx context.Context, id string) *entity.Booking {
	for _, b := range r.GetAll(ctx) {
		if b.ID == id {
			return &b
		}
	}
	return nil
}

func (r *BookingRepository) GetByUserID(ctx context.Context, userID string) []entity.Booking {
	matched := []entity.Booking{}
	for _, b := range r.GetAll(ctx) {
		if b.UserID == userID {
			matched = append(matched, b)
		}
	}
	return matched
}

func (r *BookingRepository) GetByHomestayIDs(ctx context.Context, homestayIDs []string) []entity.Booking {
	ids := make(map[string]struct{}, len(homestayIDs))
	for _, id := range homestayIDs {
		ids[id] = struct{}{}
	}
	matched := []entity.Booking{}
	for _, b := range r.GetAll(ctx) {
		if _, ok := ids[b.HomestayID]; ok {
			matched = append(matched, b)
		}
	}
	return matched
}

func (r *BookingRepository) Create(ctx context.Context, booking entity.Booking) entity.Booking {
	bookings := r.GetAll(ctx)
	booking.ID = r.ids.NewUUID()
	booking.CreatedAt = time.Now()
	bookings = append(bookings, booking)
	saveAll(ctx, r.store, store.KeyBookings, bookings)
	return booking
}

func (r *BookingRepository) Update(ctx context.Context, id string, patch map[string]interface{}) *entity.Booking {
	bookings := r.GetAll(ctx)
	for i, b := range bookings {
		if b.ID != id {
			continue
		}
		merged, ok := applyPatch(b, patch)
		if !ok {
			return nil
		}
		bookings[i] = merged
		saveAll(ctx, r.store, store.KeyBookings, bookings)
		return &merged
	}
	return nil
}

func (r *BookingRepository) Delete(ctx context.Context, id string) bool {
	bookings := r.GetAll(ctx)
	filtered := make([]entity.Booking, 0, len(bookings))
	for _, b := range bookings {
		if b.ID != id {
			filtered = append(filtered, b)
		}
	}
	saveAll(ctx, r.store, store.KeyBookings, filtered)
	return true
}
