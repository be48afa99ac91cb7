package http

import (
	"net/http"

	"github.com/paroquia-on/server/internal/utils"
	"github.com/paroquia-on/server/models"
)

// Error codes of the uniform `{error, code}` envelope. The values mirror
// the frontend contract and must not be renamed.
const (
	codeMissingCredentials     = "MISSING_CREDENTIALS"
	codeInvalidCredentials     = "INVALID_CREDENTIALS"
	codeUserInactive           = "USER_INACTIVE"
	codePasswordChangeRequired = "PASSWORD_CHANGE_REQUIRED"
	codeMissingToken           = "MISSING_TOKEN"
	codeInvalidToken           = "INVALID_TOKEN"
	codeTokenExpired           = "TOKEN_EXPIRED"
	codeUserNotFound           = "USER_NOT_FOUND"
	codeMissingFields          = "MISSING_FIELDS"
	codeEmailRequired          = "EMAIL_REQUIRED"
	codeInvalidEmail           = "INVALID_EMAIL"
	codeInvalidTempPassword    = "INVALID_TEMP_PASSWORD"
	codeWeakPassword           = "WEAK_PASSWORD"
	codeUpdateFailed           = "UPDATE_FAILED"
	codeInternalError          = "INTERNAL_ERROR"
	codeNotFound               = "NOT_FOUND"
	codeInvalidID              = "INVALID_ID"
	codeInvalidStatus          = "INVALID_STATUS"
	codeReferenceViolated      = "REFERENCE_VIOLATED"
	codeSuggestionUnavailable  = "SUGGESTION_UNAVAILABLE"

	codePasswordChanged = "PASSWORD_CHANGED"
	codePasswordReset   = "PASSWORD_RESET"
	codeLogoutSuccess   = "LOGOUT_SUCCESS"
)

// writeError emits the uniform error envelope.
func writeError(w http.ResponseWriter, status int, message, code string) {
	utils.WriteJSON(w, models.ErrorResponse{Error: message, Code: code}, status)
}

// writeWeakPassword emits the WEAK_PASSWORD envelope with the per-rule
// breakdown, the only error response that leaks validation detail.
func writeWeakPassword(w http.ResponseWriter, check models.PasswordCheck) {
	score := check.Score
	utils.WriteJSON(w, models.ErrorResponse{
		Error:        "password does not satisfy the policy",
		Code:         codeWeakPassword,
		Requirements: &check.Requirements,
		Score:        &score,
	}, http.StatusBadRequest)
}
