package domain

import "errors"

var (
	// ErrNotFound indicates the requested entity was not found.
	ErrNotFound = errors.New("not found")
	// ErrForbidden indicates the caller does not own the resource.
	ErrForbidden = errors.New("forbidden")
	// ErrUnauthorized indicates a missing, invalid, or insufficient credential.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrAlreadyExists indicates a uniqueness constraint was violated.
	ErrAlreadyExists = errors.New("already exists")
	// ErrConflict indicates the operation lost to a storage-level constraint,
	// e.g. a second order created from the same cart.
	ErrConflict = errors.New("conflict")
)

// ValidationError carries a short human-readable detail for malformed input.
type ValidationError struct {
	Detail string
}

func (e ValidationError) Error() string {
	return e.Detail
}

// DetailedError pairs a sentinel with the detail string surfaced to the
// caller. errors.Is still matches the wrapped sentinel.
type DetailedError struct {
	Err    error
	Detail string
}

func (e DetailedError) Error() string {
	return e.Detail
}

func (e DetailedError) Unwrap() error {
	return e.Err
}
