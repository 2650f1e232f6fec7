package contract

import (
	"context"

	"stayhub/internal/domain/entity"
)

// ISessionRepository tracks the single current-user snapshot under one
// reserved key. The snapshot is a cache, not a source of truth: nothing
// revalidates it against the users collection, and it survives restarts.
// Callers are responsible for stripping the password before SetCurrent.
type ISessionRepository interface {
	Current(ctx context.Context) *entity.User
	SetCurrent(ctx context.Context, user entity.User) bool
	ClearCurrent(ctx context.Context) bool
}
