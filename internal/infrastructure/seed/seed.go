// Package seed writes the default records the first time the store is
// empty, including the demo admin login used throughout the app.
package seed

import (
	"context"
	"time"

	"stayhub/internal/domain/contract"
	"stayhub/internal/domain/entity"
	"stayhub/internal/infrastructure/store"
	usecasecontract "stayhub/internal/usecase/contract"
)

// Initialize populates each absent collection with its default value.
// It checks existence before writing, so calling it on every start is
// safe.
func Initialize(ctx context.Context, kv contract.KVStore, logger usecasecontract.IAppLogger) {
	now := time.Now()

	var users []entity.User
	if !kv.Get(ctx, store.KeyUsers, &users) {
		kv.Set(ctx, store.KeyUsers, []entity.User{
			{
				ID:        "1",
				Email:     "admin@homestay.com",
				Password:  "admin123",
				Name:      "Admin User",
				Role:      entity.UserRoleAdmin,
				CreatedAt: now,
			},
		})
		logger.Infof("seed: wrote default users")
	}

	var homestays []entity.Homestay
	if !kv.Get(ctx, store.KeyHomestays, &homestays) {
		kv.Set(ctx, store.KeyHomestays, []entity.Homestay{
			{
				ID:          "1",
				HostID:      "2",
				Title:       "Cozy Mountain Retreat",
				Description: "Beautiful homestay nestled in the mountains with stunning views",
				Location:    "Manali, Himachal Pradesh",
				Price:       2500,
				Capacity:    4,
				Amenities:   []string{"WiFi", "Kitchen", "Parking", "Mountain View"},
				Images:      []string{"https://images.unsplash.com/photo-1568605114967-8130f3a36994"},
				Rating:      4.5,
				Reviews:     23,
				Available:   true,
				CreatedAt:   now,
			},
			{
				ID:          "2",
				HostID:      "2",
				Title:       "Beachside Paradise",
				Description: "Relaxing homestay right by the beach",
				Location:    "Goa",
				Price:       3000,
				Capacity:    6,
				Amenities:   []string{"WiFi", "Beach Access", "Pool", "BBQ Area"},
				Images:      []string{"https://images.unsplash.com/photo-1613490493576-7fde63acd811"},
				Rating:      4.8,
				Reviews:     45,
				Available:   true,
				CreatedAt:   now,
			},
		})
		logger.Infof("seed: wrote default homestays")
	}

	var bookings []entity.Booking
	if !kv.Get(ctx, store.KeyBookings, &bookings) {
		kv.Set(ctx, store.KeyBookings, []entity.Booking{})
	}

	var attractions []entity.Attraction
	if !kv.Get(ctx, store.KeyAttractions, &attractions) {
		kv.Set(ctx, store.KeyAttractions, []entity.Attraction{
			{
				ID:          "1",
				GuideID:     "4",
				Name:        "Hadimba Temple",
				Location:    "Manali, Himachal Pradesh",
				Description: "Ancient cave temple dedicated to Hadimba Devi",
				Category:    "Historical",
				Rating:      4.6,
				Distance:    "2 km",
				Images:      []string{"https://images.unsplash.com/photo-1587474260584-136574528ed5"},
				CreatedAt:   now,
			},
			{
				ID:          "2",
				GuideID:     "4",
				Name:        "Basilica of Bom Jesus",
				Location:    "Goa",
				Description: "UNESCO World Heritage Site",
				Category:    "Historical",
				Rating:      4.7,
				Distance:    "5 km",
				Images:      []string{"https://images.unsplash.com/photo-1512343879784-a960bf40e7f2"},
				CreatedAt:   now,
			},
		})
		logger.Infof("seed: wrote default attractions")
	}

	var reviews []entity.Review
	if !kv.Get(ctx, store.KeyReviews, &reviews) {
		kv.Set(ctx, store.KeyReviews, []entity.Review{})
	}

	// The guides collection exists in the layout but no flow uses it.
	var guides []interface{}
	if !kv.Get(ctx, store.KeyGuides, &guides) {
		kv.Set(ctx, store.KeyGuides, []interface{}{})
	}
}
