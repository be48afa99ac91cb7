package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/paroquia-on/server/internal/logger"
	"github.com/paroquia-on/server/internal/service"
	"github.com/paroquia-on/server/internal/utils"
	"github.com/paroquia-on/server/models"
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "invalid JSON body", codeMissingCredentials)
		return
	}

	result, err := h.services.AuthService.Login(ctx, req.Email, req.Password)
	if err != nil {
		log.Err(err).Str("email", req.Email).Msg("login attempt failed")
		respondError(w, err)
		return
	}

	response := models.LoginResponse{
		Success:                true,
		RequiresPasswordChange: result.RequiresPasswordChange,
		User:                   result.User.Summary(),
	}
	if !result.RequiresPasswordChange {
		response.Token = result.Token.SignedString
	}

	log.Debug().Int64("id", result.User.ID).Bool("requiresPasswordChange", result.RequiresPasswordChange).Msg("user logged in")
	utils.WriteJSON(w, response, http.StatusOK)
}

// changePasswordBody is the union of the two password-change flows served
// by POST /api/auth/change-password: the open first-access exchange
// (email + senhaTemporaria) and the authenticated own-password rotation
// (bearer token + senhaAtual).
type changePasswordBody struct {
	Email             string `json:"email"`
	TemporaryPassword string `json:"senhaTemporaria"`
	NewPassword       string `json:"novaSenha"`
	CurrentPassword   string `json:"senhaAtual"`
}

func (h *Handler) changePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var req changePasswordBody
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "invalid JSON body", codeMissingFields)
		return
	}

	switch {
	case req.Email != "" || req.TemporaryPassword != "":
		if req.Email == "" {
			writeError(w, http.StatusBadRequest, "email is required", codeEmailRequired)
			return
		}
		if err := h.services.AuthService.FirstAccessChange(ctx, req.Email, req.TemporaryPassword, req.NewPassword); err != nil {
			log.Err(err).Str("email", req.Email).Msg("first access change failed")
			respondError(w, err)
			return
		}

	case req.CurrentPassword != "":
		token, err := h.bearerToken(r)
		if err != nil {
			log.Err(err).Msg("password change without a valid session")
			respondError(w, err)
			return
		}
		if err := h.services.AuthService.ChangePassword(ctx, token.UserID, req.CurrentPassword, req.NewPassword); err != nil {
			log.Err(err).Int64("id", token.UserID).Msg("password change failed")
			respondError(w, err)
			return
		}

	default:
		writeError(w, http.StatusBadRequest, "required fields are missing", codeMissingFields)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Success: true,
		Message: "password changed successfully",
		Code:    codePasswordChanged,
	}, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := strconv.ParseInt(chi.URLParam(r, "usuario_id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid user id", codeInvalidID)
		return
	}

	var req models.ResetPasswordRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("invalid JSON was passed")
		writeError(w, http.StatusBadRequest, "invalid JSON body", codeMissingFields)
		return
	}

	user, err := h.services.AuthService.ResetPassword(ctx, userID, req.NewPassword)
	if err != nil {
		log.Err(err).Int64("id", userID).Msg("password reset failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.ResetPasswordResponse{
		Message: "password reset successfully",
		Code:    codePasswordReset,
		User:    user.Summary(),
	}, http.StatusOK)
}

// verify parses the bearer token itself instead of relying on the auth
// middleware, because its failure responses carry the envelope codes the
// frontend distinguishes (MISSING_TOKEN / TOKEN_EXPIRED / INVALID_TOKEN).
func (h *Handler) verify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		writeError(w, http.StatusUnauthorized, ErrEmptyAuthorizationHeader.Error(), codeMissingToken)
		return
	}

	tokenString, err := getTokenFromAuthHeader(authHeader)
	if err != nil {
		writeError(w, http.StatusUnauthorized, err.Error(), codeMissingToken)
		return
	}

	session, err := h.services.AuthService.VerifyToken(ctx, tokenString)
	if err != nil {
		log.Err(err).Msg("token verification failed")
		respondError(w, err)
		return
	}

	utils.WriteJSON(w, models.VerifyResponse{Valid: true, User: session}, http.StatusOK)
}

// logout is a stateless no-op: there is no server-side token blacklist, so
// the endpoint only signals the client to discard its credential. It always
// succeeds, any number of times.
func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.MessageResponse{
		Message: "logged out",
		Code:    codeLogoutSuccess,
	}, http.StatusOK)
}

// bearerToken extracts and parses the bearer token of the request,
// normalising header problems to the service token error set.
func (h *Handler) bearerToken(r *http.Request) (models.Token, error) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return models.Token{}, service.ErrMissingToken
	}

	tokenString, err := getTokenFromAuthHeader(authHeader)
	if err != nil {
		if errors.Is(err, ErrEmptyToken) || errors.Is(err, ErrInvalidAuthorizationHeader) {
			return models.Token{}, service.ErrMissingToken
		}
		return models.Token{}, service.ErrTokenInvalid
	}

	return h.services.AuthService.ParseToken(r.Context(), tokenString)
}
