package service

import (
	"context"

	"github.com/paroquia-on/server/internal/logger"
	"github.com/paroquia-on/server/internal/store"
	"github.com/paroquia-on/server/models"
)

// communityService validates community input and delegates persistence to
// the repository. Store errors pass through untouched so the handler layer
// can map the closed error set.
type communityService struct {
	repository store.CommunityRepository
	logger     *logger.Logger
}

func NewCommunityService(repository store.CommunityRepository, logger *logger.Logger) CommunityService {
	return &communityService{repository: repository, logger: logger}
}

func (s *communityService) List(ctx context.Context, filter store.CommunityFilter) ([]models.Community, error) {
	return s.repository.List(ctx, filter)
}

func (s *communityService) Get(ctx context.Context, id int64) (models.Community, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *communityService) Create(ctx context.Context, community models.Community) (models.Community, error) {
	if community.Name == "" {
		return models.Community{}, ErrMissingFields
	}

	return s.repository.Create(ctx, community)
}

func (s *communityService) Update(ctx context.Context, id int64, update models.CommunityUpdate) (models.Community, error) {
	if update.Name != nil && *update.Name == "" {
		return models.Community{}, ErrMissingFields
	}

	return s.repository.Update(ctx, id, update)
}

func (s *communityService) Delete(ctx context.Context, id int64) error {
	return s.repository.Delete(ctx, id)
}
