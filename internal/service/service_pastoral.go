package service

import (
	"context"

	"github.com/paroquia-on/server/internal/logger"
	"github.com/paroquia-on/server/internal/store"
	"github.com/paroquia-on/server/models"
)

type pastoralService struct {
	repository store.PastoralRepository
	logger     *logger.Logger
}

func NewPastoralService(repository store.PastoralRepository, logger *logger.Logger) PastoralService {
	return &pastoralService{repository: repository, logger: logger}
}

func (s *pastoralService) List(ctx context.Context, filter store.PastoralFilter) ([]models.Pastoral, error) {
	return s.repository.List(ctx, filter)
}

func (s *pastoralService) Get(ctx context.Context, id int64) (models.Pastoral, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *pastoralService) Create(ctx context.Context, pastoral models.Pastoral) (models.Pastoral, error) {
	if pastoral.Name == "" {
		return models.Pastoral{}, ErrMissingFields
	}

	return s.repository.Create(ctx, pastoral)
}

func (s *pastoralService) Update(ctx context.Context, id int64, update models.PastoralUpdate) (models.Pastoral, error) {
	if update.Name != nil && *update.Name == "" {
		return models.Pastoral{}, ErrMissingFields
	}

	return s.repository.Update(ctx, id, update)
}

func (s *pastoralService) Delete(ctx context.Context, id int64) error {
	return s.repository.Delete(ctx, id)
}
