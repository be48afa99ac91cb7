package service

import (
	"context"

	"github.com/paroquia-on/server/internal/logger"
	"github.com/paroquia-on/server/internal/store"
	"github.com/paroquia-on/server/models"
)

type personService struct {
	repository store.PersonRepository
	logger     *logger.Logger
}

func NewPersonService(repository store.PersonRepository, logger *logger.Logger) PersonService {
	return &personService{repository: repository, logger: logger}
}

func (s *personService) List(ctx context.Context, filter store.PersonFilter) ([]models.Person, error) {
	return s.repository.List(ctx, filter)
}

func (s *personService) Get(ctx context.Context, id int64) (models.Person, error) {
	return s.repository.FindByID(ctx, id)
}

func (s *personService) Create(ctx context.Context, person models.Person) (models.Person, error) {
	if person.Name == "" {
		return models.Person{}, ErrMissingFields
	}
	if person.Email != nil && *person.Email != "" && !looksLikeEmail(*person.Email) {
		return models.Person{}, ErrInvalidEmail
	}

	return s.repository.Create(ctx, person)
}

func (s *personService) Update(ctx context.Context, id int64, update models.PersonUpdate) (models.Person, error) {
	if update.Name != nil && *update.Name == "" {
		return models.Person{}, ErrMissingFields
	}
	if update.Email != nil && *update.Email != "" && !looksLikeEmail(*update.Email) {
		return models.Person{}, ErrInvalidEmail
	}

	return s.repository.Update(ctx, id, update)
}

func (s *personService) Delete(ctx context.Context, id int64) error {
	return s.repository.Delete(ctx, id)
}
