package store

import (
	"context"
	"time"

	"github.com/paroquia-on/server/models"
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying. Implemented by [PostgresErrorClassifier].
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// UserRepository is the credential store accessor of the authentication
// flow. Lookup semantics differ on purpose:
//
//   - FindByEmail applies no active filter — the login path needs to tell
//     an inactive account apart from an unknown one in application code.
//   - FindActiveByID filters on ativo at the SQL boundary — the verify
//     path treats a deactivated account as revocation.
//
// Missing rows surface as [ErrUserNotFound]; any driver failure as
// [ErrStoreUnavailable].
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (models.User, error)
	FindByID(ctx context.Context, id int64) (models.User, error)
	FindActiveByID(ctx context.Context, id int64) (models.User, error)

	// SetPasswordHash persists a new bcrypt hash. When clearTemporary is
	// true the senha_temporaria column is nulled in the same UPDATE, so
	// the first-access transition is a single-row atomic write.
	SetPasswordHash(ctx context.Context, id int64, hash string, clearTemporary bool) error

	// TouchLastLogin stamps ultimo_login with the current time.
	// Callers treat a failure as best-effort and never propagate it.
	TouchLastLogin(ctx context.Context, id int64) error
}

// RoleRepository reads perfil records for session enrichment.
type RoleRepository interface {
	FindByID(ctx context.Context, id int64) (models.Role, error)
}

// CommunityFilter narrows List results for comunidades.
type CommunityFilter struct {
	City string
}

type CommunityRepository interface {
	List(ctx context.Context, filter CommunityFilter) ([]models.Community, error)
	FindByID(ctx context.Context, id int64) (models.Community, error)
	Create(ctx context.Context, community models.Community) (models.Community, error)
	Update(ctx context.Context, id int64, update models.CommunityUpdate) (models.Community, error)
	Delete(ctx context.Context, id int64) error
}

// PastoralFilter narrows List results for pastorais.
type PastoralFilter struct {
	CommunityID *int64
	ActiveOnly  bool
}

type PastoralRepository interface {
	List(ctx context.Context, filter PastoralFilter) ([]models.Pastoral, error)
	FindByID(ctx context.Context, id int64) (models.Pastoral, error)
	Create(ctx context.Context, pastoral models.Pastoral) (models.Pastoral, error)
	Update(ctx context.Context, id int64, update models.PastoralUpdate) (models.Pastoral, error)
	Delete(ctx context.Context, id int64) error
}

// PersonFilter narrows List results for pessoas.
type PersonFilter struct {
	CommunityID *int64
	Name        string
}

type PersonRepository interface {
	List(ctx context.Context, filter PersonFilter) ([]models.Person, error)
	FindByID(ctx context.Context, id int64) (models.Person, error)
	Create(ctx context.Context, person models.Person) (models.Person, error)
	Update(ctx context.Context, id int64, update models.PersonUpdate) (models.Person, error)
	Delete(ctx context.Context, id int64) error
}

type VenueRepository interface {
	List(ctx context.Context) ([]models.Venue, error)
	FindByID(ctx context.Context, id int64) (models.Venue, error)
	Create(ctx context.Context, venue models.Venue) (models.Venue, error)
	Update(ctx context.Context, id int64, update models.VenueUpdate) (models.Venue, error)
	Delete(ctx context.Context, id int64) error
}

// ActionFilter narrows List results for acoes.
type ActionFilter struct {
	PastoralID *int64
	Status     string
}

type ActionRepository interface {
	List(ctx context.Context, filter ActionFilter) ([]models.Action, error)
	FindByID(ctx context.Context, id int64) (models.Action, error)
	Create(ctx context.Context, action models.Action) (models.Action, error)
	Update(ctx context.Context, id int64, update models.ActionUpdate) (models.Action, error)
	Delete(ctx context.Context, id int64) error
}

// EventFilter narrows List results for eventos.
type EventFilter struct {
	CommunityID *int64
	From        *time.Time
	To          *time.Time
}

type EventRepository interface {
	List(ctx context.Context, filter EventFilter) ([]models.Event, error)
	FindByID(ctx context.Context, id int64) (models.Event, error)
	Create(ctx context.Context, event models.Event) (models.Event, error)
	Update(ctx context.Context, id int64, update models.EventUpdate) (models.Event, error)
	Delete(ctx context.Context, id int64) error
}

// DashboardRepository serves the read-only aggregation queries behind the
// dashboard summary endpoint.
type DashboardRepository interface {
	CountAll(ctx context.Context) (models.DashboardSummary, error)
	EventsByMonth(ctx context.Context) ([]models.MonthCount, error)
	ActionsByStatus(ctx context.Context) ([]models.StatusCount, error)
}
