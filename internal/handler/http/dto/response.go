package dto

import (
	"time"

	"stayhub/internal/domain/entity"
)

// UserResponse is the DTO for a user. Passwords never appear here.
type UserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Name      string `json:"name"`
	Role      string `json:"role"`
	Phone     string `json:"phone,omitempty"`
	CreatedAt string `json:"created_at"`
}

// AuthResponse is the DTO for a successful login or registration. The
// redirect carries the role-based dashboard destination.
type AuthResponse struct {
	User     UserResponse `json:"user"`
	Redirect string       `json:"redirect"`
}

// ToUserResponse converts an entity.User to a UserResponse DTO.
func ToUserResponse(user entity.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Email:     user.Email,
		Name:      user.Name,
		Role:      string(user.Role),
		Phone:     user.Phone,
		CreatedAt: user.CreatedAt.Format(time.RFC3339),
	}
}

// ToUserResponses converts a slice of users, stripping passwords.
func ToUserResponses(users []entity.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, ToUserResponse(u))
	}
	return out
}

// HostSummary is the host dashboard aggregate.
type HostSummary struct {
	TotalListings int     `json:"totalListings"`
	TotalBookings int     `json:"totalBookings"`
	TotalRevenue  float64 `json:"totalRevenue"`
}

// MessageResponse is a generic response for success/error messages.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is a response for errors.
type ErrorResponse struct {
	Error string `json:"error"`
}

// FieldErrorsResponse carries per-field validation messages for inline
// display.
type FieldErrorsResponse struct {
	Errors map[string]string `json:"errors"`
}
