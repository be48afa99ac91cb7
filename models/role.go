package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
)

// Role is a named bundle of boolean permission flags attached to a user
// via the perfil reference. The authentication flow reads roles only to
// enrich a verified session; it never mutates them.
type Role struct {
	ID   int64  `json:"id"`
	Name string `json:"nome"`

	// Permissions maps permission-flag names to their enabled state.
	// Stored as a jsonb column; degrades to an empty map when the role
	// cannot be fetched.
	Permissions Permissions `json:"permissoes"`
}

// Permissions is the permission-flag mapping consulted by UI and
// authorization logic outside the authentication flow.
type Permissions map[string]bool

// Scan implements sql.Scanner for the jsonb permissoes column.
// A NULL column yields an empty, non-nil map.
func (p *Permissions) Scan(src any) error {
	if src == nil {
		*p = Permissions{}
		return nil
	}

	switch v := src.(type) {
	case []byte:
		return json.Unmarshal(v, p)
	case string:
		return json.Unmarshal([]byte(v), p)
	default:
		return errors.New("unsupported source type for permissions")
	}
}

// Value implements driver.Valuer for the jsonb permissoes column.
func (p Permissions) Value() (driver.Value, error) {
	if p == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(p)
}

// TableName returns the name of the database table
// associated with the Role model.
func (r Role) TableName() string {
	return "perfis"
}
