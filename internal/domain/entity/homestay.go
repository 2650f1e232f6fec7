package entity

import (
	"time"
)

// Homestay is a listing owned by a host. HostID references User.ID but
// is not enforced against the users collection.
type Homestay struct {
	ID          string    `json:"id"`
	HostID      string    `json:"hostId"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Location    string    `json:"location"`
	Price       float64   `json:"price"`
	Capacity    int       `json:"capacity"`
	Amenities   []string  `json:"amenities"`
	Images      []string  `json:"images"`
	Rating      float64   `json:"rating"`
	Reviews     int       `json:"reviews"`
	Available   bool      `json:"available"`
	CreatedAt   time.Time `json:"createdAt"`
}
