package kv

import (
	"context"
	"time"

	"stayhub/internal/domain/contract"
	"stayhub/internal/domain/entity"
	"stayhub/internal/infrastructure/store"
)

type UserRepository struct {
	store contract.KVStore
	ids   contract.IUUIDGenerator
}

var _ contract.IUserRepository = (*UserRepository)(nil)

func NewUserRepository(kv contract.KVStore, ids contract.IUUIDGenerator) *UserRepository {
	return &UserRepository{store: kv, ids: ids}
}

func (r *UserRepository) GetAll(ctx context.Context) []entity.User {
	return loadAll[entity.User](ctx, r.store, store.KeyUsers)
}

func (r *UserRepository) GetByID(ctx context.Context, id string) *entity.User {
	for _, u := range r.GetAll(ctx) {
		if u.ID == id {
			return &u
		}
	}
	return nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) *entity.User {
	for _, u := range r.GetAll(ctx) {
		if u.Email == email {
			return &u
		}
	}
	return nil
}

func (r *UserRepository) Create(ctx context.Context, user entity.User) entity.User {
	users := r.GetAll(ctx)
	user.ID = r.ids.NewUUID()
	user.CreatedAt = time.Now()
	users = append(users, user)
	saveAll(ctx, r.store, store.KeyUsers, users)
	return user
}

func (r *UserRepository) Update(ctx context.Context, id string, patch map[string]interface{}) *entity.User {
	users := r.GetAll(ctx)
	for i, u := range users {
		if u.ID != id {
			continue
		}
		merged, ok := applyPatch(u, patch)
		if !ok {
			return nil
		}
		users[i] = merged
		saveAll(ctx, r.store, store.KeyUsers, users)
		return &merged
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id string) bool {
	users := r.GetAll(ctx)
	filtered := make([]entity.User, 0, len(users))
	for _, u := range users {
		if u.ID != id {
			filtered = append(filtered, u)
		}
	}
	saveAll(ctx, r.store, store.KeyUsers, filtered)
	return true
}
