package models

import "time"

// User represents an account entity used for authentication and authorization.
// It contains identity attributes and credential-related data.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the internal unique identifier of the user.
	ID int64 `json:"id"`

	// Email is the unique login identifier of the account.
	Email string `json:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// Nil until the first-access bootstrap completes.
	// Never serialized to JSON.
	PasswordHash *string `json:"-"`

	// TemporaryPassword is a one-time plaintext credential issued
	// out-of-band. A non-nil value means the account is pending its
	// first-access password change, regardless of PasswordHash.
	// Never serialized to JSON.
	TemporaryPassword *string `json:"-"`

	// Active indicates whether the account may authenticate at all.
	// An inactive account is blocked even with valid credentials.
	Active bool `json:"ativo"`

	// LastLoginAt records the moment of the last successful login.
	LastLoginAt *time.Time `json:"ultimo_login,omitempty"`

	// RoleID references the perfil attached to this account.
	RoleID *int64 `json:"perfil_id"`

	// PersonID references the pessoa record behind this account.
	PersonID *int64 `json:"pessoa_id"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "usuarios"
}

// HasTemporaryPassword reports whether the account is still in the
// first-access state and must exchange its temporary password before a
// real session can be issued.
func (u User) HasTemporaryPassword() bool {
	return u.TemporaryPassword != nil && *u.TemporaryPassword != ""
}

// UserSummary is the public projection of a User returned by the login and
// verify endpoints. It never carries credential material.
type UserSummary struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	RoleID   *int64 `json:"perfil_id"`
	PersonID *int64 `json:"pessoa_id"`
}

// Summary builds the credential-free projection of the user.
func (u User) Summary() UserSummary {
	return UserSummary{
		ID:       u.ID,
		Email:    u.Email,
		RoleID:   u.RoleID,
		PersonID: u.PersonID,
	}
}
