package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/paroquia-on/server/internal/config"
	"github.com/paroquia-on/server/internal/logger"
	"github.com/paroquia-on/server/internal/store"
	"github.com/paroquia-on/server/internal/utils"
	"github.com/paroquia-on/server/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService. It drives the
// login state machine over the stored user record, the password lifecycle
// (first-access bootstrap, authenticated change, admin reset) and the JWT
// token lifecycle, using bcrypt for password hashing.
type authService struct {
	// userRepository is the data-access layer for usuarios records.
	userRepository store.UserRepository

	// roleRepository enriches verified sessions with role name and
	// permissions. Lookups through it are best-effort only.
	roleRepository store.RoleRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost is the adaptive hashing work factor for new passwords.
	bcryptCost int

	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repositories
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, roleRepository store.RoleRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		roleRepository: roleRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Login runs one authentication attempt over the stored user record.
//
// The outcome depends on the account state, checked in order:
//   - unknown email or wrong password → [ErrInvalidCredentials]; the two
//     cases are deliberately indistinguishable to avoid user enumeration.
//   - inactive account → [ErrUserInactive], regardless of credentials.
//   - temporary password pending: an exact match yields a LoginResult with
//     RequiresPasswordChange set and no token; any other value yields
//     [ErrPasswordChangeRequired] since the account is known-valid but
//     blocked pending rotation.
//   - normal password: a bcrypt comparison against the stored hash. On
//     match a token is issued and ultimo_login is stamped best-effort.
func (a *authService) Login(ctx context.Context, email, password string) (LoginResult, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return LoginResult{}, ErrMissingCredentials
	}

	user, err := a.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return LoginResult{}, ErrInvalidCredentials
		}

		log.Err(err).Str("func", "*authService.Login").Msg("user lookup failed")
		return LoginResult{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if !user.Active {
		return LoginResult{}, ErrUserInactive
	}

	// temporary-password login takes precedence over the stored hash
	if user.HasTemporaryPassword() {
		if password == *user.TemporaryPassword {
			return LoginResult{User: user, RequiresPasswordChange: true}, nil
		}
		return LoginResult{}, ErrPasswordChangeRequired
	}

	if user.PasswordHash == nil {
		return LoginResult{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Msg("token creation failed")
		return LoginResult{}, err
	}

	if err := a.userRepository.TouchLastLogin(ctx, user.ID); err != nil {
		// best-effort: a stale ultimo_login never blocks the login response
		log.Err(err).Str("func", "*authService.Login").Int64("id", user.ID).Msg("last login update failed")
	}

	return LoginResult{User: user, Token: token}, nil
}

// FirstAccessChange exchanges a temporary password for a real one.
//
// Returns:
//   - [ErrMissingFields] when any of the three inputs is empty.
//   - [ErrInvalidEmail] when the email is not plausibly an address.
//   - [ErrUserNotFound] when no active user matches the email.
//   - [ErrInvalidTempPassword] on a string-exact mismatch.
//   - a [*WeakPasswordError] when the new password scores below the policy.
//   - [ErrUpdateFailed] when the hash cannot be persisted.
//
// On success the new bcrypt hash is stored and the temporary password is
// cleared in the same single-row update.
func (a *authService) FirstAccessChange(ctx context.Context, email, temporaryPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	if email == "" || temporaryPassword == "" || newPassword == "" {
		return ErrMissingFields
	}
	if !looksLikeEmail(email) {
		return ErrInvalidEmail
	}

	user, err := a.userRepository.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}

		log.Err(err).Str("func", "*authService.FirstAccessChange").Msg("user lookup failed")
		return fmt.Errorf("user lookup failed: %w", err)
	}
	if !user.Active {
		return ErrUserNotFound
	}

	if !user.HasTemporaryPassword() || temporaryPassword != *user.TemporaryPassword {
		return ErrInvalidTempPassword
	}

	if check := EvaluatePassword(newPassword); !check.Acceptable() {
		return &WeakPasswordError{Check: check}
	}

	return a.storePasswordHash(ctx, user.ID, newPassword, true)
}

// ChangePassword rotates the password of an authenticated user after
// validating the current one against the stored hash. The weak-password
// gate and hashing match the first-access flow.
func (a *authService) ChangePassword(ctx context.Context, userID int64, currentPassword, newPassword string) error {
	log := logger.FromContext(ctx)

	if currentPassword == "" || newPassword == "" {
		return ErrMissingFields
	}

	user, err := a.userRepository.FindActiveByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}

		log.Err(err).Str("func", "*authService.ChangePassword").Msg("user lookup failed")
		return fmt.Errorf("user lookup failed: %w", err)
	}

	if user.PasswordHash == nil {
		return ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrInvalidCredentials
	}

	if check := EvaluatePassword(newPassword); !check.Acceptable() {
		return &WeakPasswordError{Check: check}
	}

	return a.storePasswordHash(ctx, user.ID, newPassword, false)
}

// ResetPassword sets a new password for the user identified by id without
// a current-password check. Authorization is the caller's concern. The
// temporary password, when still set, is cleared so the account leaves the
// first-access-pending state with a usable credential.
func (a *authService) ResetPassword(ctx context.Context, userID int64, newPassword string) (models.User, error) {
	log := logger.FromContext(ctx)

	if newPassword == "" {
		return models.User{}, ErrMissingFields
	}

	user, err := a.userRepository.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.User{}, ErrUserNotFound
		}

		log.Err(err).Str("func", "*authService.ResetPassword").Msg("user lookup failed")
		return models.User{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if check := EvaluatePassword(newPassword); !check.Acceptable() {
		return models.User{}, &WeakPasswordError{Check: check}
	}

	if err := a.storePasswordHash(ctx, user.ID, newPassword, true); err != nil {
		return models.User{}, err
	}

	return user, nil
}

// VerifyToken checks a bearer token and re-fetches its user.
//
// Signature and expiry are validated first; then the user is loaded with
// the active filter applied in SQL, so a deactivated or deleted account
// invalidates an otherwise valid token (revocation-by-deactivation).
// Role enrichment is best-effort: when the role lookup fails, permissions
// degrade to an empty mapping and verification still succeeds.
func (a *authService) VerifyToken(ctx context.Context, tokenString string) (models.SessionUser, error) {
	log := logger.FromContext(ctx)

	if strings.TrimSpace(tokenString) == "" {
		return models.SessionUser{}, ErrMissingToken
	}

	token, err := a.ParseToken(ctx, tokenString)
	if err != nil {
		return models.SessionUser{}, err
	}

	user, err := a.userRepository.FindActiveByID(ctx, token.UserID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return models.SessionUser{}, ErrTokenInvalid
		}

		log.Err(err).Str("func", "*authService.VerifyToken").Msg("user lookup failed")
		return models.SessionUser{}, fmt.Errorf("user lookup failed: %w", err)
	}

	session := models.SessionUser{
		ID:          user.ID,
		Email:       user.Email,
		Login:       user.Email,
		RoleID:      user.RoleID,
		PersonID:    user.PersonID,
		Permissions: models.Permissions{},
	}

	if user.RoleID != nil {
		role, err := a.roleRepository.FindByID(ctx, *user.RoleID)
		if err != nil {
			log.Err(err).Str("func", "*authService.VerifyToken").Int64("perfil_id", *user.RoleID).Msg("role enrichment failed")
		} else {
			session.RoleName = role.Name
			session.Permissions = role.Permissions
		}
	}

	return session, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured tokenSignKey, carries the
// configured tokenIssuer as the "iss" claim, and expires after
// tokenDuration.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string, verifying the signature
// and the issuer claim. Expiry is reported as [ErrTokenExpired]; every
// other validation failure is normalised to [ErrTokenInvalid] so callers do
// not inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return models.Token{}, ErrTokenExpired
		}
		return models.Token{}, ErrTokenInvalid
	}

	return token, nil
}

func (a *authService) storePasswordHash(ctx context.Context, userID int64, newPassword string, clearTemporary bool) error {
	log := logger.FromContext(ctx)

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), a.bcryptCost)
	if err != nil {
		log.Err(err).Str("func", "*authService.storePasswordHash").Msg("hashing failed")
		return fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}

	if err := a.userRepository.SetPasswordHash(ctx, userID, string(hash), clearTemporary); err != nil {
		log.Err(err).Str("func", "*authService.storePasswordHash").Int64("id", userID).Msg("hash persistence failed")
		return fmt.Errorf("%w: %w", ErrUpdateFailed, err)
	}

	return nil
}

func looksLikeEmail(email string) bool {
	at := strings.Index(email, "@")
	return at > 0 && at < len(email)-1 && !strings.ContainsAny(email, " \t")
}
