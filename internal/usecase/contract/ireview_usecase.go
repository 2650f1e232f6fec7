package contract

import (
	"context"

	"stayhub/internal/domain/entity"
)

// IReviewUsecase covers homestay reviews.
type IReviewUsecase interface {
	GetAll(ctx context.Context) []entity.Review
	GetByHomestayID(ctx context.Context, homestayID string) []entity.Review
	Create(ctx context.Context, userID string, review entity.Review) entity.Review
	Delete(ctx context.Context, actor entity.User, id string) error
}
