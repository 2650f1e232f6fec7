package kv

import (
	"context"

	"stayhub/internal/domain/contract"
	"stayhub/internal/domain/entity"
	"stayhub/internal/infrastructure/store"
)

// SessionRepository keeps the single current-user snapshot under its
// reserved key. It does not redact the record itself; callers strip the
// password first.
type SessionRepository struct {
	store contract.KVStore
}

var _ contract.ISessionRepository = (*SessionRepository)(nil)

func NewSessionRepository(kv contract.KVStore) *SessionRepository {
	return &SessionRepository{store: kv}
}

func (r *SessionRepository) Current(ctx context.Context) *entity.User {
	var user entity.User
	if !r.store.Get(ctx, store.KeyCurrentUser, &user) {
		return nil
	}
	return &user
}

func (r *SessionRepository) SetCurrent(ctx context.Context, user entity.User) bool {
	return r.store.Set(ctx, store.KeyCurrentUser, user)
}

func (r *SessionRepository) ClearCurrent(ctx context.Context) bool {
	return r.store.Remove(ctx, store.KeyCurrentUser)
}
