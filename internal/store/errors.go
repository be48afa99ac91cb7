package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
//
// Not-found results are normal negative outcomes, not store failures; any
// driver-level failure is wrapped into [ErrStoreUnavailable] so that callers
// never branch on raw database errors.
var (
	// ErrUserNotFound is returned when a user lookup by email or id
	// produces an empty result set.
	ErrUserNotFound = errors.New("user was not found")

	// ErrRoleNotFound is returned when a perfil lookup by id produces an
	// empty result set.
	ErrRoleNotFound = errors.New("role was not found")

	// ErrRecordNotFound is returned by entity repositories when the
	// requested row does not exist or an update/delete affected no rows.
	ErrRecordNotFound = errors.New("record was not found")

	// ErrReferenceViolated is returned when an insert or update references
	// a missing foreign row, or a delete is blocked by dependent rows.
	ErrReferenceViolated = errors.New("referenced record does not exist or is still in use")

	// ErrStoreUnavailable is the generic data-access failure condition.
	// It deliberately hides the underlying driver error from callers;
	// the full detail is logged server-side only.
	ErrStoreUnavailable = errors.New("data store unavailable")

	// ErrNoFieldsToUpdate is returned when a partial update request
	// carries no updatable fields at all.
	ErrNoFieldsToUpdate = errors.New("no fields to update")
)
