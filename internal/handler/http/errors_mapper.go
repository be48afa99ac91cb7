package http

import (
	"errors"
	"net/http"

	"github.com/paroquia-on/server/internal/service"
	"github.com/paroquia-on/server/internal/store"
)

// errorMapping pairs an HTTP status with the envelope code for one member
// of the closed service/store error set.
type errorMapping struct {
	status int
	code   string
}

var errorMappings = []struct {
	target error
	errorMapping
}{
	{service.ErrMissingCredentials, errorMapping{http.StatusBadRequest, codeMissingCredentials}},
	{service.ErrInvalidCredentials, errorMapping{http.StatusUnauthorized, codeInvalidCredentials}},
	{service.ErrUserInactive, errorMapping{http.StatusForbidden, codeUserInactive}},
	{service.ErrPasswordChangeRequired, errorMapping{http.StatusPreconditionRequired, codePasswordChangeRequired}},
	{service.ErrInvalidTempPassword, errorMapping{http.StatusBadRequest, codeInvalidTempPassword}},
	{service.ErrUserNotFound, errorMapping{http.StatusNotFound, codeUserNotFound}},
	{service.ErrMissingFields, errorMapping{http.StatusBadRequest, codeMissingFields}},
	{service.ErrInvalidEmail, errorMapping{http.StatusBadRequest, codeInvalidEmail}},
	{service.ErrInvalidStatus, errorMapping{http.StatusBadRequest, codeInvalidStatus}},
	{service.ErrMissingToken, errorMapping{http.StatusUnauthorized, codeMissingToken}},
	{service.ErrTokenExpired, errorMapping{http.StatusUnauthorized, codeTokenExpired}},
	{service.ErrTokenInvalid, errorMapping{http.StatusUnauthorized, codeInvalidToken}},
	{service.ErrUpdateFailed, errorMapping{http.StatusInternalServerError, codeUpdateFailed}},
	{service.ErrSuggestionUnavailable, errorMapping{http.StatusBadGateway, codeSuggestionUnavailable}},

	{store.ErrRecordNotFound, errorMapping{http.StatusNotFound, codeNotFound}},
	{store.ErrNoFieldsToUpdate, errorMapping{http.StatusBadRequest, codeMissingFields}},
	{store.ErrReferenceViolated, errorMapping{http.StatusConflict, codeReferenceViolated}},
	{store.ErrStoreUnavailable, errorMapping{http.StatusInternalServerError, codeInternalError}},
}

// mapError resolves err against the closed error set. Raw store detail
// never reaches the client; anything unmapped collapses into a generic
// INTERNAL_ERROR.
func mapError(err error) errorMapping {
	for _, m := range errorMappings {
		if errors.Is(err, m.target) {
			return m.errorMapping
		}
	}
	return errorMapping{http.StatusInternalServerError, codeInternalError}
}

// respondError writes the envelope for err, checking the weak-password
// breakdown first since it is the only non-sentinel member of the set.
func respondError(w http.ResponseWriter, err error) {
	var weak *service.WeakPasswordError
	if errors.As(err, &weak) {
		writeWeakPassword(w, weak.Check)
		return
	}

	m := mapError(err)
	message := err.Error()
	if m.status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}
	writeError(w, m.status, message, m.code)
}
