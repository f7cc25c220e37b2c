package services

import "errors"

// Sentinel domain errors. Services wrap them with context via %w; the
// controllers map them to HTTP statuses.
var (
	// ErrNotFound: an id lookup missed, or a referenced row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrConflict: a uniqueness violation, a dependent-row delete, or an
	// illegal status transition.
	ErrConflict = errors.New("conflict")

	// ErrInvalid: a semantically invalid value that field validation
	// cannot catch (e.g. a non-positive line-item quantity).
	ErrInvalid = errors.New("invalid")
)
