package service

import (
	"context"
	"fmt"

	"github.com/paroquia-on/server/internal/adapter"
	"github.com/paroquia-on/server/internal/logger"
	"github.com/paroquia-on/server/internal/store"
	"github.com/paroquia-on/server/models"
)

// actionService validates pastoral-action input and delegates persistence
// to the repository. It also fronts the external text-generation service
// for the objective suggestion endpoint; the suggester may be nil when no
// service was configured at startup.
type actionService struct {
	repository store.ActionRepository
	suggester  adapter.ObjectiveSuggester
	logger     *logger.Logger
}

func NewActionService(repository store.ActionRepository, suggester adapter.ObjectiveSuggester, logger *logger.Logger) ActionService {
	return &actionService{repository: repository, suggester: suggester, logger: logger}
}

func (s *actionService) List(ctx context.Context, filter store.ActionFilter) ([]models.Action, error) {
	if filter.Status != "" && !validActionStatus(filter.Status) {
		return nil, ErrInvalidStatus
	}

	return s.repository.List(ctx, filter)
}

func (s *actionService) Get(ctx context.Context, id int64) (models.Action, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *actionService) Create(ctx context.Context, action models.Action) (models.Action, error) {
	if action.Title == "" {
		return models.Action{}, ErrMissingFields
	}

	if action.Status == "" {
		action.Status = models.ActionStatusPlanned
	}
	if !validActionStatus(action.Status) {
		return models.Action{}, ErrInvalidStatus
	}

	return s.repository.Create(ctx, action)
}

func (s *actionService) Update(ctx context.Context, id int64, update models.ActionUpdate) (models.Action, error) {
	if update.Title != nil && *update.Title == "" {
		return models.Action{}, ErrMissingFields
	}
	if update.Status != nil && !validActionStatus(*update.Status) {
		return models.Action{}, ErrInvalidStatus
	}

	return s.repository.Update(ctx, id, update)
}

func (s *actionService) Delete(ctx context.Context, id int64) error {
	return s.repository.Delete(ctx, id)
}

// SuggestObjective asks the configured text-generation service for a short
// objective matching the theme. Every upstream failure, including an
// unconfigured suggester, is reported as [ErrSuggestionUnavailable]; a
// missing theme is the caller's input error.
func (s *actionService) SuggestObjective(ctx context.Context, theme string) (string, error) {
	log := logger.FromContext(ctx)

	if theme == "" {
		return "", ErrMissingFields
	}
	if s.suggester == nil {
		return "", ErrSuggestionUnavailable
	}

	objective, err := s.suggester.SuggestObjective(ctx, theme)
	if err != nil {
		log.Err(err).Str("func", "*actionService.SuggestObjective").Msg("suggestion request failed")
		return "", fmt.Errorf("%w: %w", ErrSuggestionUnavailable, err)
	}

	return objective, nil
}

func validActionStatus(status string) bool {
	switch status {
	case models.ActionStatusPlanned, models.ActionStatusInProgress, models.ActionStatusDone, models.ActionStatusCancelled:
		return true
	default:
		return false
	}
}
