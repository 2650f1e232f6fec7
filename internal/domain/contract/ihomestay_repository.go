package contract

import (
	"context"

	"stayhub/internal/domain/entity"
)

// IHomestayRepository is the CRUD surface over the listings collection.
type IHomestayRepository interface {
	GetAll(ctx context.Context) []entity.Homestay
	GetByID(ctx context.Context, id string) *entity.Homestay
	GetByHostID(ctx context.Context, hostID string) []entity.Homestay
	// Search matches the query case-insensitively against title,
	// location and description substrings.
	Search(ctx context.Context, query string) []entity.Homestay
	Create(ctx context.Context, homestay entity.Homestay) entity.Homestay
	Update(ctx context.Context, id string, patch map[string]interface{}) *entity.Homestay
	Delete(ctx context.Context, id string) bool
}
