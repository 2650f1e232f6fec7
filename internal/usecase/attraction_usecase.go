package usecase

import (
	"context"

	"stayhub/internal/domain/contract"
	"stayhub/internal/domain/entity"
	usecasecontract "stayhub/internal/usecase/contract"
)

// AttractionUsecase implements guide-curated points of interest.
type AttractionUsecase struct {
	attractions contract.IAttractionRepository
	logger      usecasecontract.IAppLogger
}

var _ usecasecontract.IAttractionUsecase = (*AttractionUsecase)(nil)

func NewAttractionUsecase(attractions contract.IAttractionRepository, logger usecasecontract.IAppLogger) *AttractionUsecase {
	return &AttractionUsecase{attractions: attractions, logger: logger}
}

func (uc *AttractionUsecase) GetAll(ctx context.Context) []entity.Attraction {
	return uc.attractions.GetAll(ctx)
}

func (uc *AttractionUsecase) GetByID(ctx context.Context, id string) *entity.Attraction {
	return uc.attractions.GetByID(ctx, id)
}

func (uc *AttractionUsecase) GetByLocation(ctx context.Context, location string) []entity.Attraction {
	return uc.attractions.GetByLocation(ctx, location)
}

func (uc *AttractionUsecase) Create(ctx context.Context, guideID string, attraction entity.Attraction) (*entity.Attraction, error) {
	if !entity.ValidCategory(attraction.Category) {
		return nil, ErrInvalidCategory
	}
	attraction.GuideID = guideID
	created := uc.attractions.Create(ctx, attraction)
	uc.logger.Infof("attraction %s created by guide %s", created.ID, guideID)
	return &created, nil
}

// Update is restricted to the authoring guide or an admin.
func (uc *AttractionUsecase) Update(ctx context.Context, actor entity.User, id string, patch map[string]interface{}) (*entity.Attraction, error) {
	existing := uc.attractions.GetByID(ctx, id)
	if existing == nil {
		return nil, ErrNotFound
	}
	if actor.Role != entity.UserRoleAdmin && existing.GuideID != actor.ID {
		return nil, ErrForbidden
	}
	if category, ok := patch["category"].(string); ok && !entity.ValidCategory(category) {
		return nil, ErrInvalidCategory
	}
	updated := uc.attractions.Update(ctx, id, patch)
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// Delete is restricted to the authoring guide or an admin.
func (uc *AttractionUsecase) Delete(ctx context.Context, actor entity.User, id string) error {
	existing := uc.attractions.GetByID(ctx, id)
	if existing == nil {
		return ErrNotFound
	}
	if actor.Role != entity.UserRoleAdmin && existing.GuideID != actor.ID {
		return ErrForbidden
	}
	uc.attractions.Delete(ctx, id)
	return nil
}
