package types

import "errors"

// Lifecycle and lookup errors. Store operations wrap these with the entity
// kind and ID so callers can match with errors.Is while still getting a
// descriptive message.
var (
	ErrNotFound        = errors.New("not found")
	ErrAlreadyArchived = errors.New("already archived")
	ErrNotArchived     = errors.New("not archived")
	ErrAlreadyDeleted  = errors.New("already deleted")
	ErrNotDeleted      = errors.New("not deleted")
)

// Validation errors.
var (
	ErrInvalidEnum    = errors.New("invalid enumeration value")
	ErrInvalidDueDate = errors.New("invalid due_date")

	// ErrInvalidListFilter rejects archived=true combined with deleted=true.
	ErrInvalidListFilter = errors.New("invalid combination: archived=true AND deleted=true")

	// ErrConflictingLinkFilter rejects filtering links by both endpoints.
	ErrConflictingLinkFilter = errors.New("cannot filter by both from_id and to_id")
)
