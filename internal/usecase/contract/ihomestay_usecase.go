package contract

import (
	"context"

	"stayhub/internal/domain/entity"
)

// IHomestayUsecase covers listing management and search.
type IHomestayUsecase interface {
	GetAll(ctx context.Context) []entity.Homestay
	GetByID(ctx context.Context, id string) *entity.Homestay
	GetByHostID(ctx context.Context, hostID string) []entity.Homestay
	// Search filters case-insensitively over title, location and
	// description; availableOnly additionally drops unavailable
	// listings (the tourist view).
	Search(ctx context.Context, query string, availableOnly bool) []entity.Homestay
	Create(ctx context.Context, hostID string, homestay entity.Homestay) entity.Homestay
	// Update is restricted to the owning host or an admin.
	Update(ctx context.Context, actor entity.User, id string, patch map[string]interface{}) (*entity.Homestay, error)
	// Delete is restricted to the owning host or an admin.
	Delete(ctx context.Context, actor entity.User, id string) error
}
