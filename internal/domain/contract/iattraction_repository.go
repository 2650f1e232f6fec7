package contract

import (
	"context"

	"stayhub/internal/domain/entity"
)

// IAttractionRepository is the CRUD surface over the attractions
// collection.
type IAttractionRepository interface {
	GetAll(ctx context.Context) []entity.Attraction
	GetByID(ctx context.Context, id string) *entity.Attraction
	// GetByLocation matches the location case-insensitively as a
	// substring.
	GetByLocation(ctx context.Context, location string) []entity.Attraction
	Create(ctx context.Context, attraction entity.Attraction) entity.Attraction
	Update(ctx context.Context, id string, patch map[string]interface{}) *entity.Attraction
	Delete(ctx context.Context, id string) bool
}
