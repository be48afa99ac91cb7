package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing or out of range.
var (
	// ErrMissingTokenSignKey indicates that no JWT signing secret was
	// provided by any configuration source. The server never falls back
	// to a hardcoded default secret.
	ErrMissingTokenSignKey = errors.New("token sign key is not configured")
	// ErrMissingDatabaseDSN indicates that no database connection string
	// was provided.
	ErrMissingDatabaseDSN = errors.New("database DSN is not configured")
	// ErrInvalidBcryptCost indicates a bcrypt work factor outside the
	// range supported by the bcrypt implementation (4..31).
	ErrInvalidBcryptCost = errors.New("bcrypt cost is out of range")
)
