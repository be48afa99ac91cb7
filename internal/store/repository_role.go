package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/paroquia-on/server/internal/logger"
	"github.com/paroquia-on/server/models"
)

// roleRepository is the PostgreSQL-backed implementation of [RoleRepository].
// Roles are read-only from the authentication flow's perspective.
type roleRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewRoleRepository constructs a [RoleRepository] backed by the provided
// database connection and logger.
func NewRoleRepository(db *DB, logger *logger.Logger) RoleRepository {
	logger.Debug().Msg("creating role repository")
	return &roleRepository{
		db:     db,
		logger: logger,
	}
}

// FindByID retrieves a perfil record with its permission map.
//
// Error handling:
//   - Empty result → [ErrRoleNotFound].
//   - Any driver-level error → wrapped as [ErrStoreUnavailable].
func (r *roleRepository) FindByID(ctx context.Context, id int64) (models.Role, error) {
	log := logger.FromContext(ctx)

	var role models.Role
	row := r.db.QueryRowContext(ctx, findRoleByID, id)

	if err := row.Scan(&role.ID, &role.Name, &role.Permissions); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Role{}, ErrRoleNotFound
		}

		log.Err(err).Str("func", "*roleRepository.FindByID").Msg("error: scanning error")
		return models.Role{}, r.db.wrapUnavailable("find role", err)
	}

	if role.Permissions == nil {
		role.Permissions = models.Permissions{}
	}

	return role, nil
}
