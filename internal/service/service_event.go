package service

import (
	"context"

	"github.com/paroquia-on/server/internal/logger"
	"github.com/paroquia-on/server/internal/store"
	"github.com/paroquia-on/server/models"
)

type eventService struct {
	repository store.EventRepository
	logger     *logger.Logger
}

func NewEventService(repository store.EventRepository, logger *logger.Logger) EventService {
	return &eventService{repository: repository, logger: logger}
}

func (s *eventService) List(ctx context.Context, filter store.EventFilter) ([]models.Event, error) {
	return s.repository.List(ctx, filter)
}

func (s *eventService) Get(ctx context.Context, id int64) (models.Event, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *eventService) Create(ctx context.Context, event models.Event) (models.Event, error) {
	if event.Name == "" || event.Date.IsZero() {
		return models.Event{}, ErrMissingFields
	}

	return s.repository.Create(ctx, event)
}

func (s *eventService) Update(ctx context.Context, id int64, update models.EventUpdate) (models.Event, error) {
	if update.Name != nil && *update.Name == "" {
		return models.Event{}, ErrMissingFields
	}
	if update.Date != nil && update.Date.IsZero() {
		return models.Event{}, ErrMissingFields
	}

	return s.repository.Update(ctx, id, update)
}

func (s *eventService) Delete(ctx context.Context, id int64) error {
	return s.repository.Delete(ctx, id)
}
