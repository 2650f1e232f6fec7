package contract

import (
	"context"

	"stayhub/internal/domain/entity"
)

// IReviewRepository is the CRUD surface over the reviews collection.
type IReviewRepository interface {
	GetAll(ctx context.Context) []entity.Review
	GetByHomestayID(ctx context.Context, homestayID string) []entity.Review
	Create(ctx context.Context, review entity.Review) entity.Review
	Delete(ctx context.Context, id string) bool
}
