package repository

import "errors"

// Sentinel errors the handler layer maps onto the HTTP taxonomy:
// ErrNotFound -> 404, ErrDuplicateSlug -> 409, everything else -> 500.
var (
	ErrNotFound      = errors.New("not found")
	ErrDuplicateSlug = errors.New("duplicate slug")
)
