package kv

import (
	"context"
	"strings"
	"time"

	"stayhub/internal/domain/contract"
	"stayhub/internal/domain/entity"
	"stayhub/internal/infrastructure/store"
)

type HomestayRepository struct {
	store contract.KVStore
	ids   contract.IUUIDGenerator
}

var _ contract.IHomestayRepository = (*HomestayRepository)(nil)

func NewHomestayRepository(kv contract.KVStore, ids contract.IUUIDGenerator) *HomestayRepository {
	return &HomestayRepository{store: kv, ids: ids}
}

func (r *HomestayRepository) GetAll(ctx context.Context) []entity.Homestay {
	return loadAll[entity.Homestay](ctx, r.store, store.KeyHomestays)
}

func (r *HomestayRepository) GetByID(ctx context.Context, id string) *entity.Homestay {
	for _, h := range r.GetAll(ctx) {
		if h.ID == id {
			return &h
		}
	}
	return nil
}

func (r *HomestayRepository) GetByHostID(ctx context.Context, hostID string) []entity.Homestay {
	matched := []entity.Homestay{}
	for _, h := range r.GetAll(ctx) {
		if h.HostID == hostID {
			matched = append(matched, h)
		}
	}
	return matched
}

func (r *HomestayRepository) Search(ctx context.Context, query string) []entity.Homestay {
	q := strings.ToLower(query)
	matched := []entity.Homestay{}
	for _, h := range r.GetAll(ctx) {
		if strings.Contains(strings.ToLower(h.Title), q) ||
			strings.Contains(strings.ToLower(h.Location), q) ||
			strings.Contains(strings.ToLower(h.Description), q) {
			matched = append(matched, h)
		}
	}
	return matched
}

func (r *HomestayRepository) Create(ctx context.Context, homestay entity.Homestay) entity.Homestay {
	homestays := r.GetAll(ctx)
	homestay.ID = r.ids.NewUUID()
	homestay.CreatedAt = time.Now()
	homestays = append(homestays, homestay)
	saveAll(ctx, r.store, store.KeyHomestays, homestays)
	return homestay
}

func (r *HomestayRepository) Update(ctx context.Context, id string, patch map[string]interface{}) *entity.Homestay {
	homestays := r.GetAll(ctx)
	for i, h := range homestays {
		if h.ID != id {
			continue
		}
		merged, ok := applyPatch(h, patch)
		if !ok {
			return nil
		}
		homestays[i] = merged
		saveAll(ctx, r.store, store.KeyHomestays, homestays)
		return &merged
	}
	return nil
}

func (r *HomestayRepository) Delete(ctx context.Context, id string) bool {
	homestays := r.GetAll(ctx)
	filtered := make([]entity.Homestay, 0, len(homestays))
	for _, h := range homestays {
		if h.ID != id {
			filtered = append(filtered, h)
		}
	}
	saveAll(ctx, r.store, store.KeyHomestays, filtered)
	return true
}
