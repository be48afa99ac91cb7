package store

import (
	"github.com/paroquia-on/server/internal/logger"
)

// Storages bundles every repository behind one constructor so the service
// layer receives a single dependency.
type Storages struct {
	UserRepository      UserRepository
	RoleRepository      RoleRepository
	CommunityRepository CommunityRepository
	PastoralRepository  PastoralRepository
	PersonRepository    PersonRepository
	VenueRepository     VenueRepository
	ActionRepository    ActionRepository
	EventRepository     EventRepository
	DashboardRepository DashboardRepository
}

// NewStorages constructs all PostgreSQL-backed repositories over the shared
// database handle.
func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository:      NewUserRepository(db, logger),
		RoleRepository:      NewRoleRepository(db, logger),
		CommunityRepository: NewCommunityRepository(db, logger),
		PastoralRepository:  NewPastoralRepository(db, logger),
		PersonRepository:    NewPersonRepository(db, logger),
		VenueRepository:     NewVenueRepository(db, logger),
		ActionRepository:    NewActionRepository(db, logger),
		EventRepository:     NewEventRepository(db, logger),
		DashboardRepository: NewDashboardRepository(db, logger),
	}
}
