package entity

import (
	"time"
)

// Attraction is a point of interest curated by a guide. GuideID
// references User.ID without enforcement.
type Attraction struct {
	ID          string    `json:"id"`
	GuideID     string    `json:"guideId"`
	Name        string    `json:"name"`
	Location    string    `json:"location"`
	Description string    `json:"description"`
	Category    string    `json:"category"`
	Rating      float64   `json:"rating"`
	Distance    string    `json:"distance"`
	Images      []string  `json:"images"`
	CreatedAt   time.Time `json:"createdAt"`
}

// AttractionCategories is the fixed set of categories offered by the
// guide dashboard.
var AttractionCategories = []string{
	"Historical",
	"Nature",
	"Adventure",
	"Religious",
	"Cultural",
	"Entertainment",
}

// ValidCategory reports whether c is one of the fixed categories.
func ValidCategory(c string) bool {
	for _, cat := range AttractionCategories {
		if cat == c {
			return true
		}
	}
	return false
}
