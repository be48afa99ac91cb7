package models

// ErrorResponse is the uniform error envelope returned by every endpoint.
//
// Requirements and Score are populated only on weak-password rejections,
// where the per-rule breakdown is guidance to a legitimate user rather
// than an attacker signal.
type ErrorResponse struct {
	Error        string                `json:"error"`
	Code         string                `json:"code"`
	Requirements *PasswordRequirements `json:"requirements,omitempty"`
	Score        *int                  `json:"score,omitempty"`
}

// LoginResponse is the success body of POST /api/auth/login.
//
// Exactly one of Token or RequiresPasswordChange is meaningful: a pending
// first-access login carries no token because a real session may only be
// issued after the mandatory password rotation.
type LoginResponse struct {
	Success                bool        `json:"success"`
	Token                  string      `json:"token,omitempty"`
	RequiresPasswordChange bool        `json:"requiresPasswordChange,omitempty"`
	User                   UserSummary `json:"user"`
}

// MessageResponse is the success body of the password change/reset and
// logout operations.
type MessageResponse struct {
	Success bool   `json:"success,omitempty"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

// ResetPasswordResponse is the success body of the admin reset operation.
type ResetPasswordResponse struct {
	Message string      `json:"message"`
	Code    string      `json:"code"`
	User    UserSummary `json:"user"`
}

// SessionUser is the enriched user view returned by POST /api/auth/verify.
// Login duplicates Email for frontend compatibility. Permissions degrade
// to an empty map when the role lookup fails.
type SessionUser struct {
	ID          int64       `json:"id"`
	Email       string      `json:"email"`
	Login       string      `json:"login"`
	RoleID      *int64      `json:"perfil_id"`
	PersonID    *int64      `json:"pessoa_id"`
	RoleName    string      `json:"perfil"`
	Permissions Permissions `json:"permissoes"`
}

// VerifyResponse is the success body of POST /api/auth/verify.
type VerifyResponse struct {
	Valid bool        `json:"valid"`
	User  SessionUser `json:"user"`
}

// SuggestObjectiveResponse is the success body of
// POST /api/acoes/sugerir-objetivo.
type SuggestObjectiveResponse struct {
	Objective string `json:"objetivo"`
}
