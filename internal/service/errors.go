package service

import (
	"errors"
	"fmt"

	"github.com/paroquia-on/server/models"
)

var (
	ErrMissingCredentials = errors.New("email and password are required")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserInactive       = errors.New("user is inactive")

	// ErrPasswordChangeRequired marks an account that is known-valid but
	// blocked until the temporary password is exchanged for a real one.
	ErrPasswordChangeRequired = errors.New("password change required")

	ErrInvalidTempPassword = errors.New("temporary password does not match")
	ErrUserNotFound        = errors.New("user not found")

	ErrMissingFields = errors.New("required fields are missing")
	ErrInvalidEmail  = errors.New("invalid email")
	ErrInvalidStatus = errors.New("invalid action status")

	ErrMissingToken        = errors.New("missing bearer token")
	ErrTokenExpired        = errors.New("token is expired")
	ErrTokenInvalid        = errors.New("token is invalid")
	ErrTokenCreationFailed = errors.New("token creation failed")

	// ErrUpdateFailed wraps store failures on password writes so handlers
	// can answer with a dedicated code instead of a generic 500.
	ErrUpdateFailed = errors.New("credential update failed")

	ErrSuggestionUnavailable = errors.New("objective suggestion unavailable")
)

// WeakPasswordError carries the per-rule breakdown of a rejected password
// so the client can show which classes are missing.
type WeakPasswordError struct {
	Check models.PasswordCheck
}

func (e *WeakPasswordError) Error() string {
	return fmt.Sprintf("weak password: score %d of 5", e.Check.Score)
}
