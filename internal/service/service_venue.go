package service

import (
	"context"

	"github.com/paroquia-on/server/internal/logger"
	"github.com/paroquia-on/server/internal/store"
	"github.com/paroquia-on/server/models"
)

type venueService struct {
	repository store.VenueRepository
	logger     *logger.Logger
}

func NewVenueService(repository store.VenueRepository, logger *logger.Logger) VenueService {
	return &venueService{repository: repository, logger: logger}
}

func (s *venueService) List(ctx context.Context) ([]models.Venue, error) {
	return s.repository.List(ctx)
}

func (s *venueService) Get(ctx context.Context, id int64) (models.Venue, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *venueService) Create(ctx context.Context, venue models.Venue) (models.Venue, error) {
	if venue.Name == "" {
		return models.Venue{}, ErrMissingFields
	}

	return s.repository.Create(ctx, venue)
}

func (s *venueService) Update(ctx context.Context, id int64, update models.VenueUpdate) (models.Venue, error) {
	if update.Name != nil && *update.Name == "" {
		return models.Venue{}, ErrMissingFields
	}

	return s.repository.Update(ctx, id, update)
}

func (s *venueService) Delete(ctx context.Context, id int64) error {
	return s.repository.Delete(ctx, id)
}
