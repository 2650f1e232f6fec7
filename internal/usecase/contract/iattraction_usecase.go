package contract

import (
	"context"

	"stayhub/internal/domain/entity"
)

// IAttractionUsecase covers guide-curated points of interest.
type IAttractionUsecase interface {
	GetAll(ctx context.Context) []entity.Attraction
	GetByID(ctx context.Context, id string) *entity.Attraction
	GetByLocation(ctx context.Context, location string) []entity.Attraction
	Create(ctx context.Context, guideID string, attraction entity.Attraction) (*entity.Attraction, error)
	Update(ctx context.Context, actor entity.User, id string, patch map[string]interface{}) (*entity.Attraction, error)
	Delete(ctx context.Context, actor entity.User, id string) error
}
