package entity

import (
	"time"
)

// User represents a registered account in the system. Password is kept
// as entered; the session snapshot strips it before caching.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Password  string    `json:"password,omitempty"`
	Name      string    `json:"name"`
	Role      UserRole  `json:"role"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// UserRole represents the role of a user in the system
type UserRole string

const (
	UserRoleAdmin   UserRole = "admin"
	UserRoleHost    UserRole = "host"
	UserRoleTourist UserRole = "tourist"
	UserRoleGuide   UserRole = "guide"
)

// ValidRole reports whether r is one of the four known roles.
func ValidRole(r UserRole) bool {
	switch r {
	case UserRoleAdmin, UserRoleHost, UserRoleTourist, UserRoleGuide:
		return true
	}
	return false
}

// DashboardPath is the single role-to-destination mapping consumed
// wherever post-auth routing occurs.
func DashboardPath(r UserRole) string {
	switch r {
	case UserRoleAdmin:
		return "/admin/dashboard"
	case UserRoleHost:
		return "/host/dashboard"
	case UserRoleTourist:
		return "/tourist/dashboard"
	case UserRoleGuide:
		return "/guide/dashboard"
	default:
		return "/"
	}
}

// WithoutPassword returns a copy of the user safe to cache as the
// session snapshot.
func (u User) WithoutPassword() User {
	u.Password = ""
	return u
}
