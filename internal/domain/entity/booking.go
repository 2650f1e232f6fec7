package entity

import (
	"math"
	"time"
)

// DateLayout is the calendar-date format used for check-in/check-out.
const DateLayout = "2006-01-02"

// Booking is a tourist's reservation against a homestay. UserID and
// HomestayID are written as given and never checked against their
// collections.
type Booking struct {
	ID         string        `json:"id"`
	UserID     string        `json:"userId"`
	HomestayID string        `json:"homestayId"`
	GuestName  string        `json:"guestName"`
	GuestEmail string        `json:"guestEmail"`
	CheckIn    string        `json:"checkIn"`
	CheckOut   string        `json:"checkOut"`
	Guests     int           `json:"guests"`
	TotalPrice float64       `json:"totalPrice"`
	Status     BookingStatus `json:"status"`
	CreatedAt  time.Time     `json:"createdAt"`
}

// BookingStatus is the lifecycle state of a booking.
type BookingStatus string

const (
	BookingStatusPending   BookingStatus = "pending"
	BookingStatusConfirmed BookingStatus = "confirmed"
	BookingStatusCancelled BookingStatus = "cancelled"
)

// Terminal reports whether s is a final state. Confirmed and cancelled
// bookings never transition again.
func (s BookingStatus) Terminal() bool {
	return s == BookingStatusConfirmed || s == BookingStatusCancelled
}

// Nights returns the number of nights between two calendar dates,
// rounding partial days up. Returns 0 when either date is unparseable
// or the range is not positive.
func Nights(checkIn, checkOut string) int {
	start, err := time.Parse(DateLayout, checkIn)
	if err != nil {
		return 0
	}
	end, err := time.Parse(DateLayout, checkOut)
	if err != nil {
		return 0
	}
	diff := end.Sub(start).Hours() / 24
	if diff <= 0 {
		return 0
	}
	return int(math.Ceil(diff))
}
