package usecase

import (
	"context"

	"stayhub/internal/domain/contract"
	"stayhub/internal/domain/entity"
	usecasecontract "stayhub/internal/usecase/contract"
)

// ReviewUsecase implements homestay reviews. The collection is part of
// the storage schema and served here even though no dashboard drives it
// yet.
type ReviewUsecase struct {
	reviews contract.IReviewRepository
	logger  usecasecontract.IAppLogger
}

var _ usecasecontract.IReviewUsecase = (*ReviewUsecase)(nil)

func NewReviewUsecase(reviews contract.IReviewRepository, logger usecasecontract.IAppLogger) *ReviewUsecase {
	return &ReviewUsecase{reviews: reviews, logger: logger}
}

func (uc *ReviewUsecase) GetAll(ctx context.Context) []entity.Review {
	return uc.reviews.GetAll(ctx)
}

func (uc *ReviewUsecase) GetByHomestayID(ctx context.Context, homestayID string) []entity.Review {
	return uc.reviews.GetByHomestayID(ctx, homestayID)
}

func (uc *ReviewUsecase) Create(ctx context.Context, userID string, review entity.Review) entity.Review {
	review.UserID = userID
	return uc.reviews.Create(ctx, review)
}

// Delete is restricted to the review author or an admin.
func (uc *ReviewUsecase) Delete(ctx context.Context, actor entity.User, id string) error {
	for _, rev := range uc.reviews.GetAll(ctx) {
		if rev.ID != id {
			continue
		}
		if actor.Role != entity.UserRoleAdmin && rev.UserID != actor.ID {
			return ErrForbidden
		}
		uc.reviews.Delete(ctx, id)
		return nil
	}
	return ErrNotFound
}
