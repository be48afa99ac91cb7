package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// SessionClaims is the claim set carried by every issued bearer token.
//
// It embeds [jwt.RegisteredClaims] for the standard fields (sub, exp, iat,
// iss) and adds the identity attributes the frontend needs without an extra
// round trip. The subject claim holds the user ID in base-10 form.
type SessionClaims struct {
	jwt.RegisteredClaims

	// Email is the login identifier of the token's owner.
	Email string `json:"email"`

	// RoleID is the perfil reference of the token's owner, if any.
	RoleID *int64 `json:"perfil_id,omitempty"`
}

// Token wraps a JWT token with convenience accessors for authentication flows.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
//
// UserID is a cached, parsed copy of the "sub" claim converted to int64,
// populated during issuance or verification to avoid repeated parsing.
type Token struct {
	// Token is the underlying JWT token used for signing and claim
	// inspection. Excluded from JSON serialization because only the
	// compact string form is meaningful outside the server process.
	*jwt.Token `json:"-"`

	// Claims is the decoded session claim set.
	Claims SessionClaims `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
