package service

import (
	"context"

	"github.com/paroquia-on/server/internal/store"
	"github.com/paroquia-on/server/models"
)

// LoginResult is the outcome of a successful login attempt. When
// RequiresPasswordChange is set the user authenticated with a temporary
// password and no token is issued.
type LoginResult struct {
	User                   models.User
	Token                  models.Token
	RequiresPasswordChange bool
}

// AuthService drives the credential lifecycle: login, first-access
// bootstrap, password change and reset, and bearer-token verification.
type AuthService interface {
	Login(ctx context.Context, email, password string) (LoginResult, error)
	FirstAccessChange(ctx context.Context, email, temporaryPassword, newPassword string) error
	ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error
	ResetPassword(ctx context.Context, userID int64, newPassword string) (models.User, error)
	VerifyToken(ctx context.Context, tokenString string) (models.SessionUser, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

type CommunityService interface {
	List(ctx context.Context, filter store.CommunityFilter) ([]models.Community, error)
	Get(ctx context.Context, id int64) (models.Community, error)
	Create(ctx context.Context, community models.Community) (models.Community, error)
	Update(ctx context.Context, id int64, update models.CommunityUpdate) (models.Community, error)
	Delete(ctx context.Context, id int64) error
}

type PastoralService interface {
	List(ctx context.Context, filter store.PastoralFilter) ([]models.Pastoral, error)
	Get(ctx context.Context, id int64) (models.Pastoral, error)
	Create(ctx context.Context, pastoral models.Pastoral) (models.Pastoral, error)
	Update(ctx context.Context, id int64, update models.PastoralUpdate) (models.Pastoral, error)
	Delete(ctx context.Context, id int64) error
}

type PersonService interface {
	List(ctx context.Context, filter store.PersonFilter) ([]models.Person, error)
	Get(ctx context.Context, id int64) (models.Person, error)
	Create(ctx context.Context, person models.Person) (models.Person, error)
	Update(ctx context.Context, id int64, update models.PersonUpdate) (models.Person, error)
	Delete(ctx context.Context, id int64) error
}

type VenueService interface {
	List(ctx context.Context) ([]models.Venue, error)
	Get(ctx context.Context, id int64) (models.Venue, error)
	Create(ctx context.Context, venue models.Venue) (models.Venue, error)
	Update(ctx context.Context, id int64, update models.VenueUpdate) (models.Venue, error)
	Delete(ctx context.Context, id int64) error
}

type ActionService interface {
	List(ctx context.Context, filter store.ActionFilter) ([]models.Action, error)
	Get(ctx context.Context, id int64) (models.Action, error)
	Create(ctx context.Context, action models.Action) (models.Action, error)
	Update(ctx context.Context, id int64, update models.ActionUpdate) (models.Action, error)
	Delete(ctx context.Context, id int64) error
	SuggestObjective(ctx context.Context, theme string) (string, error)
}

type EventService interface {
	List(ctx context.Context, filter store.EventFilter) ([]models.Event, error)
	Get(ctx context.Context, id int64) (models.Event, error)
	Create(ctx context.Context, event models.Event) (models.Event, error)
	Update(ctx context.Context, id int64, update models.EventUpdate) (models.Event, error)
	Delete(ctx context.Context, id int64) error
}

// DashboardService assembles the landing-page summary from the grouped
// store queries.
type DashboardService interface {
	Summary(ctx context.Context) (models.DashboardSummary, error)
}
