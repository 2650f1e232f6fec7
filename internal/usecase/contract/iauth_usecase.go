package contract

import (
	"context"

	"stayhub/internal/domain/entity"
)

// IAuthUsecase covers registration, login and the persisted session
// snapshot.
type IAuthUsecase interface {
	// Register creates an account and logs it in. Fails with
	// usecase.ErrEmailTaken when the email is already registered.
	Register(ctx context.Context, email, password, name string, role entity.UserRole, phone string) (*entity.User, error)
	// Login verifies credentials and caches the password-stripped
	// snapshot as the current session.
	Login(ctx context.Context, email, password string) (*entity.User, error)
	Logout(ctx context.Context)
	// CurrentUser returns the cached session snapshot, nil when logged
	// out.
	CurrentUser(ctx context.Context) *entity.User
	// UpdateProfile patches the user record and refreshes the snapshot.
	UpdateProfile(ctx context.Context, id string, patch map[string]interface{}) (*entity.User, error)
}
