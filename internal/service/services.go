package service

import (
	"github.com/paroquia-on/server/internal/adapter"
	"github.com/paroquia-on/server/internal/config"
	"github.com/paroquia-on/server/internal/logger"
	"github.com/paroquia-on/server/internal/store"
)

type Services struct {
	AuthService      AuthService
	CommunityService CommunityService
	PastoralService  PastoralService
	PersonService    PersonService
	VenueService     VenueService
	ActionService    ActionService
	EventService     EventService
	DashboardService DashboardService
}

// NewServices wires every service over the shared repositories. suggester
// may be nil when no text-generation endpoint is configured; the action
// service then reports the suggestion feature as unavailable.
func NewServices(storages *store.Storages, suggester adapter.ObjectiveSuggester, cfg config.StructuredConfig, logger *logger.Logger) *Services {
	return &Services{
		AuthService:      NewAuthService(storages.UserRepository, storages.RoleRepository, cfg.Auth, logger),
		CommunityService: NewCommunityService(storages.CommunityRepository, logger),
		PastoralService:  NewPastoralService(storages.PastoralRepository, logger),
		PersonService:    NewPersonService(storages.PersonRepository, logger),
		VenueService:     NewVenueService(storages.VenueRepository, logger),
		ActionService:    NewActionService(storages.ActionRepository, suggester, logger),
		EventService:     NewEventService(storages.EventRepository, logger),
		DashboardService: NewDashboardService(storages.DashboardRepository, logger),
	}
}
