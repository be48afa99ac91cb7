package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/paroquia-on/server/internal/logger"
	"github.com/paroquia-on/server/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It is the credential store accessor of the authentication flow and touches
// only the "usuarios" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindByEmail retrieves a user record by its unique email, with no filter
// on the ativo column. Email carries a UNIQUE constraint, so the lookup is
// a plain QueryRow; a second row for the same email cannot exist.
//
// Error handling:
//   - Empty result → [ErrUserNotFound].
//   - Any driver-level error → wrapped as [ErrStoreUnavailable].
func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)
	return r.scanUser(ctx, "FindByEmail", row)
}

// FindByID retrieves a user record by id regardless of its active state.
// Used by the admin reset path, which must target deactivated accounts too.
func (r *userRepository) FindByID(ctx context.Context, id int64) (models.User, error) {
	row := r.db.QueryRowContext(ctx, findUserByID, id)
	return r.scanUser(ctx, "FindByID", row)
}

// FindActiveByID retrieves a user record by id, filtering ativo = TRUE at
// the SQL boundary. A deactivated account is indistinguishable from a
// missing one here, which is exactly what the verify path wants.
func (r *userRepository) FindActiveByID(ctx context.Context, id int64) (models.User, error) {
	row := r.db.QueryRowContext(ctx, findActiveUserByID, id)
	return r.scanUser(ctx, "FindActiveByID", row)
}

// SetPasswordHash persists a new password hash for the user. When
// clearTemporary is set, the temporary password is nulled in the same
// single-row UPDATE so the first-access transition needs no transaction.
//
// Returns [ErrUserNotFound] when the UPDATE affected no rows.
func (r *userRepository) SetPasswordHash(ctx context.Context, id int64, hash string, clearTemporary bool) error {
	log := logger.FromContext(ctx)

	query := setPasswordHash
	if clearTemporary {
		query = setPasswordHashClearTemporary
	}

	result, err := r.db.ExecContext(ctx, query, id, hash)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetPasswordHash").Msg("error: update failed")
		return r.db.wrapUnavailable("set password hash", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetPasswordHash").Msg("error: rows affected")
		return r.db.wrapUnavailable("set password hash", err)
	}
	if affected == 0 {
		return ErrUserNotFound
	}

	return nil
}

// TouchLastLogin stamps ultimo_login with the current time. Failures are
// returned to the caller, which treats the operation as best-effort.
func (r *userRepository) TouchLastLogin(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, touchLastLogin, id); err != nil {
		log.Err(err).Str("func", "*userRepository.TouchLastLogin").Msg("error: update failed")
		return r.db.wrapUnavailable("touch last login", err)
	}

	return nil
}

func (r *userRepository) scanUser(ctx context.Context, op string, row *sql.Row) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.TemporaryPassword,
		&user.Active,
		&user.LastLoginAt,
		&user.RoleID,
		&user.PersonID,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*userRepository."+op).Msg("error: scanning error")
		return models.User{}, r.db.wrapUnavailable(op, err)
	}

	return user, nil
}
