package entity

import (
	"time"
)

// Review is a guest review of a homestay. Present in the storage schema
// and served by the API, though no dashboard flow drives it yet.
type Review struct {
	ID         string    `json:"id"`
	HomestayID string    `json:"homestayId"`
	UserID     string    `json:"userId"`
	Rating     float64   `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}
