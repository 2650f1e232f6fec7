package kv

import (
	"context"
	"strings"
	"time"

	"stayhub/internal/domain/contract"
	"stayhub/internal/domain/entity"
	"stayhub/internal/infrastructure/store"
)

type AttractionRepository struct {
	store contract.KVStore
	ids   contract.IUUIDGenerator
}

var _ contract.IAttractionRepository = (*AttractionRepository)(nil)

func NewAttractionRepository(kv contract.KVStore, ids contract.IUUIDGenerator) *AttractionRepository {
	return &AttractionRepository{store: kv, ids: ids}
}

func (r *AttractionRepository) GetAll(ctx context.Context) []entity.Attraction {
	return loadAll[entity.Attraction](ctx, r.store, store.KeyAttractions)
}

func (r *AttractionRepository) GetByID(ctx context.Context, id string) *entity.Attraction {
	for _, a := range r.GetAll(ctx) {
		if a.ID == id {
			return &a
		}
	}
	return nil
}

func (r *AttractionRepository) GetByLocation(ctx context.Context, location string) []entity.Attraction {
	loc := strings.ToLower(location)
	matched := []entity.Attraction{}
	for _, a := range r.GetAll(ctx) {
		if strings.Contains(strings.ToLower(a.Location), loc) {
			matched = append(matched, a)
		}
	}
	return matched
}

func (r *AttractionRepository) Create(ctx context.Context, attraction entity.Attraction) entity.Attraction {
	attractions := r.GetAll(ctx)
	attraction.ID = r.ids.NewUUID()
	attraction.CreatedAt = time.Now()
	attractions = append(attractions, attraction)
	saveAll(ctx, r.store, store.KeyAttractions, attractions)
	return attraction
}

func (r *AttractionRepository) Update(ctx context.Context, id string, patch map[string]interface{}) *entity.Attraction {
	attractions := r.GetAll(ctx)
	for i, a := range attractions {
		if a.ID != id {
			continue
		}
		merged, ok := applyPatch(a, patch)
		if !ok {
			return nil
		}
		attractions[i] = merged
		saveAll(ctx, r.store, store.KeyAttractions, attractions)
		return &merged
	}
	return nil
}

func (r *AttractionRepository) Delete(ctx context.Context, id string) bool {
	attractions := r.GetAll(ctx)
	filtered := make([]entity.Attraction, 0, len(attractions))
	for _, a := range attractions {
		if a.ID != id {
			filtered = append(filtered, a)
		}
	}
	saveAll(ctx, r.store, store.KeyAttractions, filtered)
	return true
}
