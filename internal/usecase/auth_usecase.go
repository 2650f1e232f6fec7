package usecase

import (
	"context"

	"stayhub/internal/domain/contract"
	"stayhub/internal/domain/entity"
	usecasecontract "stayhub/internal/usecase/contract"
)

// AuthUsecase implements registration, login and the persisted session
// snapshot. Passwords are stored as entered and compared directly; the
// snapshot is always written password-stripped.
type AuthUsecase struct {
	users    contract.IUserRepository
	sessions contract.ISessionRepository
	logger   usecasecontract.IAppLogger
}

var _ usecasecontract.IAuthUsecase = (*AuthUsecase)(nil)

func NewAuthUsecase(
	users contract.IUserRepository,
	sessions contract.ISessionRepository,
	logger usecasecontract.IAppLogger,
) *AuthUsecase {
	return &AuthUsecase{users: users, sessions: sessions, logger: logger}
}

// Register creates the account and logs it in. Duplicate emails fail
// with ErrEmailTaken and do not append a second record.
func (uc *AuthUsecase) Register(ctx context.Context, email, password, name string, role entity.UserRole, phone string) (*entity.User, error) {
	if !entity.ValidRole(role) {
		return nil, ErrInvalidRole
	}
	if existing := uc.users.GetByEmail(ctx, email); existing != nil {
		return nil, ErrEmailTaken
	}

	created := uc.users.Create(ctx, entity.User{
		Email:    email,
		Password: password,
		Name:     name,
		Role:     role,
		Phone:    phone,
	})

	snapshot := created.WithoutPassword()
	uc.sessions.SetCurrent(ctx, snapshot)
	uc.logger.Infof("registered %s as %s", created.Email, created.Role)
	return &snapshot, nil
}

// Login verifies the credentials and caches the password-stripped
// snapshot as the current session.
func (uc *AuthUsecase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	user := uc.users.GetByEmail(ctx, email)
	if user == nil {
		return nil, ErrUserNotFound
	}
	if user.Password != password {
		return nil, ErrInvalidPassword
	}

	snapshot := user.WithoutPassword()
	uc.sessions.SetCurrent(ctx, snapshot)
	return &snapshot, nil
}

func (uc *AuthUsecase) Logout(ctx context.Context) {
	uc.sessions.ClearCurrent(ctx)
}

// CurrentUser returns the cached snapshot. Nothing revalidates it
// against the users collection.
func (uc *AuthUsecase) CurrentUser(ctx context.Context) *entity.User {
	return uc.sessions.Current(ctx)
}

// UpdateProfile patches the stored record and refreshes the snapshot
// when the patched user is the one logged in.
func (uc *AuthUsecase) UpdateProfile(ctx context.Context, id string, patch map[string]interface{}) (*entity.User, error) {
	updated := uc.users.Update(ctx, id, patch)
	if updated == nil {
		return nil, ErrUserNotFound
	}
	snapshot := updated.WithoutPassword()
	if current := uc.sessions.Current(ctx); current != nil && current.ID == id {
		uc.sessions.SetCurrent(ctx, snapshot)
	}
	return &snapshot, nil
}
