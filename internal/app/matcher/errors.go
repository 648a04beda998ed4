// internal/app/matcher/errors.go
package matcher

import "errors"

// Assignment failures each get a distinct sentinel so the HTTP layer
// can map every kind to its own status and message. Store I/O failures
// are wrapped with %w instead and surface as generic server errors.
var (
	// ErrInvalidID means the volunteer id is not a 24-hex object id.
	ErrInvalidID = errors.New("invalid volunteer id format")

	// ErrVolunteerNotFound means no volunteer document has the id.
	ErrVolunteerNotFound = errors.New("volunteer not found")

	// ErrIncompleteVolunteer means the profile is missing zip code,
	// skills, or availability and cannot be matched.
	ErrIncompleteVolunteer = errors.New("volunteer data is incomplete")

	// ErrFallbackEventNotFound means the configured fallback event does
	// not exist. This is an operator-visible misconfiguration, not a
	// transient condition.
	ErrFallbackEventNotFound = errors.New("fallback event not found")

	// ErrAlreadyAssigned means the volunteer is already on the target
	// event's roster. No mutation occurred.
	ErrAlreadyAssigned = errors.New("volunteer already assigned to this event")

	// ErrAssignmentFailed means the roster append modified zero
	// documents: either the event vanished between read and write or a
	// concurrent call appended the volunteer first. Safe to retry once;
	// the retry reports ErrAlreadyAssigned if the volunteer made it on.
	ErrAssignmentFailed = errors.New("assignment update failed")
)
