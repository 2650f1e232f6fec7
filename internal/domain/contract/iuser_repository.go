package contract

import (
	"context"

	"stayhub/internal/domain/entity"
)

// IUserRepository is the CRUD surface over the users collection. Lookups
// return nil when no record matches; store faults surface the same way.
type IUserRepository interface {
	GetAll(ctx context.Context) []entity.User
	GetByID(ctx context.Context, id string) *entity.User
	// GetByEmail matches the email exactly (case-sensitive).
	GetByEmail(ctx context.Context, email string) *entity.User
	// Create assigns the id and creation time and persists the record.
	Create(ctx context.Context, user entity.User) entity.User
	// Update shallow-merges patch onto the stored record: patch fields
	// overwrite, unspecified fields are retained.
	Update(ctx context.Context, id string, patch map[string]interface{}) *entity.User
	// Delete removes the record. True even when nothing matched.
	Delete(ctx context.Context, id string) bool
}
