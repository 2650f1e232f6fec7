package usecase

import (
	"context"

	"stayhub/internal/domain/contract"
	"stayhub/internal/domain/entity"
	usecasecontract "stayhub/internal/usecase/contract"
)

// HomestayUsecase implements listing management and search.
type HomestayUsecase struct {
	homestays contract.IHomestayRepository
	logger    usecasecontract.IAppLogger
}

var _ usecasecontract.IHomestayUsecase = (*HomestayUsecase)(nil)

func NewHomestayUsecase(homestays contract.IHomestayRepository, logger usecasecontract.IAppLogger) *HomestayUsecase {
	return &HomestayUsecase{homestays: homestays, logger: logger}
}

func (uc *HomestayUsecase) GetAll(ctx context.Context) []entity.Homestay {
	return uc.homestays.GetAll(ctx)
}

func (uc *HomestayUsecase) GetByID(ctx context.Context, id string) *entity.Homestay {
	return uc.homestays.GetByID(ctx, id)
}

func (uc *HomestayUsecase) GetByHostID(ctx context.Context, hostID string) []entity.Homestay {
	return uc.homestays.GetByHostID(ctx, hostID)
}

// Search matches title, location and description case-insensitively.
// The tourist view passes availableOnly to hide unavailable listings.
func (uc *HomestayUsecase) Search(ctx context.Context, query string, availableOnly bool) []entity.Homestay {
	results := uc.homestays.Search(ctx, query)
	if !availableOnly {
		return results
	}
	available := []entity.Homestay{}
	for _, h := range results {
		if h.Available {
			available = append(available, h)
		}
	}
	return available
}

func (uc *HomestayUsecase) Create(ctx context.Context, hostID string, homestay entity.Homestay) entity.Homestay {
	homestay.HostID = hostID
	created := uc.homestays.Create(ctx, homestay)
	uc.logger.Infof("homestay %s created by host %s", created.ID, hostID)
	return created
}

// Update is restricted to the owning host or an admin.
func (uc *HomestayUsecase) Update(ctx context.Context, actor entity.User, id string, patch map[string]interface{}) (*entity.Homestay, error) {
	existing := uc.homestays.GetByID(ctx, id)
	if existing == nil {
		return nil, ErrNotFound
	}
	if actor.Role != entity.UserRoleAdmin && existing.HostID != actor.ID {
		return nil, ErrForbidden
	}
	updated := uc.homestays.Update(ctx, id, patch)
	if updated == nil {
		return nil, ErrNotFound
	}
	return updated, nil
}

// Delete is restricted to the owning host or an admin.
func (uc *HomestayUsecase) Delete(ctx context.Context, actor entity.User, id string) error {
	existing := uc.homestays.GetByID(ctx, id)
	if existing == nil {
		return ErrNotFound
	}
	if actor.Role != entity.UserRoleAdmin && existing.HostID != actor.ID {
		return ErrForbidden
	}
	uc.homestays.Delete(ctx, id)
	return nil
}
