package domain

import "errors"

// Domain errors as sentinel values
var (
	// ErrCancelled marks a fetch that was cancelled by its caller. It is never
	// a user-visible failure; superseded fetches resolve to it and are
	// discarded silently.
	ErrCancelled = errors.New("fetch cancelled")

	// ErrProductNotFound indicates a product id the catalog does not know.
	ErrProductNotFound = errors.New("product not found")
)
