package mocks

import (
	"context"

	"stayhub/internal/domain/entity"
	"stayhub/internal/usecase"
	usecasecontract "stayhub/internal/usecase/contract"
)

// MockAuthUsecase is a mock implementation of the auth usecase for
// handler tests.
type MockAuthUsecase struct {
	// Control mock behavior
	ShouldFailRegister      bool
	ShouldFailLogin         bool
	ShouldFailUpdateProfile bool
	LoggedOut               bool

	// Return values
	MockUser entity.User
}

// Ensure MockAuthUsecase implements the interface handler.NewAuthHandler expects
var _ usecasecontract.IAuthUsecase = (*MockAuthUsecase)(nil)

func NewMockAuthUsecase() *MockAuthUsecase {
	return &MockAuthUsecase{
		MockUser: entity.User{
			ID:    "mock-user-id",
			Email: "test@example.com",
			Name:  "Test User",
			Role:  entity.UserRoleTourist,
		},
	}
}

func (m *MockAuthUsecase) Register(ctx context.Context, email, password, name string, role entity.UserRole, phone string) (*entity.User, error) {
	if m.ShouldFailRegister {
		return nil, usecase.ErrEmailTaken
	}
	user := m.MockUser
	user.Email = email
	user.Name = name
	user.Role = role
	return &user, nil
}

func (m *MockAuthUsecase) Login(ctx context.Context, email, password string) (*entity.User, error) {
	if m.ShouldFailLogin {
		return nil, usecase.ErrInvalidPassword
	}
	return &m.MockUser, nil
}

func (m *MockAuthUsecase) Logout(ctx context.Context) {
	m.LoggedOut = true
}

func (m *MockAuthUsecase) CurrentUser(ctx context.Context) *entity.User {
	if m.LoggedOut {
		return nil
	}
	return &m.MockUser
}

func (m *MockAuthUsecase) UpdateProfile(ctx context.Context, id string, patch map[string]interface{}) (*entity.User, error) {
	if m.ShouldFailUpdateProfile {
		return nil, usecase.ErrUserNotFound
	}
	return &m.MockUser, nil
}
