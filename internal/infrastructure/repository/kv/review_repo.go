package kv

import (
	"context"
	"time"

	"stayhub/internal/domain/contract"
	"stayhub/internal/domain/entity"
	"stayhub/internal/infrastructure/store"
)

type ReviewRepository struct {
	store contract.KVStore
	ids   contract.IUUIDGenerator
}

var _ contract.IReviewRepository = (*ReviewRepository)(nil)

func NewReviewRepository(kv contract.KVStore, ids contract.IUUIDGenerator) *ReviewRepository {
	return &ReviewRepository{store: kv, ids: ids}
}

func (r *ReviewRepository) GetAll(ctx context.Context) []entity.Review {
	return loadAll[entity.Review](ctx, r.store, store.KeyReviews)
}

func (r *ReviewRepository) GetByHomestayID(ctx context.Context, homestayID string) []entity.Review {
	matched := []entity.Review{}
	for _, rev := range r.GetAll(ctx) {
		if rev.HomestayID == homestayID {
			matched = append(matched, rev)
		}
	}
	return matched
}

func (r *ReviewRepository) Create(ctx context.Context, review entity.Review) entity.Review {
	reviews := r.GetAll(ctx)
	review.ID = r.ids.NewUUID()
	review.CreatedAt = time.Now()
	reviews = append(reviews, review)
	saveAll(ctx, r.store, store.KeyReviews, reviews)
	return review
}

func (r *ReviewRepository) Delete(ctx context.Context, id string) bool {
	reviews := r.GetAll(ctx)
	filtered := make([]entity.Review, 0, len(reviews))
	for _, rev := range reviews {
		if rev.ID != id {
			filtered = append(filtered, rev)
		}
	}
	saveAll(ctx, r.store, store.KeyReviews, filtered)
	return true
}
