package adapter

import "errors"

var (
	// ErrNotConfigured is returned when no suggestion service URL was
	// supplied at startup.
	ErrNotConfigured = errors.New("suggestion service not configured")

	// ErrUnauthorized signals a rejected API key.
	ErrUnauthorized = errors.New("suggestion service rejected credentials")

	// ErrUpstream covers every other upstream failure: bad status, timeout,
	// unusable response body.
	ErrUpstream = errors.New("suggestion service unavailable")
)
