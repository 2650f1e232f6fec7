package usecase

import (
	"errors"
)

// Domain errors. Raised here and converted into user-facing responses
// one layer up, at the HTTP boundary.
var (
	ErrEmailTaken        = errors.New("user with this email already exists")
	ErrUserNotFound      = errors.New("user not found")
	ErrInvalidPassword   = errors.New("invalid password")
	ErrInvalidRole       = errors.New("invalid role")
	ErrNotFound          = errors.New("record not found")
	ErrForbidden         = errors.New("not allowed for this user")
	ErrCapacityExceeded  = errors.New("guest count exceeds homestay capacity")
	ErrInvalidGuests     = errors.New("guests must be a positive number")
	ErrInvalidDateRange  = errors.New("invalid date range")
	ErrInvalidCategory   = errors.New("invalid attraction category")
	ErrBookingFinalized  = errors.New("booking is already confirmed or cancelled")
	ErrInvalidTransition = errors.New("booking can only move to confirmed or cancelled")
)
