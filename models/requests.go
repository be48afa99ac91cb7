package models

// LoginRequest is the body of POST /api/auth/login.
// Field names mirror the frontend contract.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"senha"`
}

// FirstAccessRequest is the body of POST /api/auth/change-password: the
// first-access exchange of a temporary password for a real one.
type FirstAccessRequest struct {
	Email             string `json:"email"`
	TemporaryPassword string `json:"senhaTemporaria"`
	NewPassword       string `json:"novaSenha"`
}

// ChangePasswordRequest is the body of the authenticated own-password
// change operation.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"senhaAtual"`
	NewPassword     string `json:"novaSenha"`
}

// ResetPasswordRequest is the body of the admin reset operation
// POST /api/auth/reset-password/{usuario_id}.
type ResetPasswordRequest struct {
	NewPassword string `json:"novaSenha"`
}

// SuggestObjectiveRequest is the body of POST /api/acoes/sugerir-objetivo.
type SuggestObjectiveRequest struct {
	Theme string `json:"tema"`
}
