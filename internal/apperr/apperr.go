// Package apperr defines the error taxonomy raised by the use case layer.
// Repositories never return these: they signal "not found" with nil/false
// sentinels, and the use cases translate those into taxonomy errors that the
// transport maps onto HTTP statuses.
package apperr

import "github.com/pkg/errors"

var (
	// ErrNotFound marks a referenced entity id that does not exist.
	ErrNotFound = errors.New("resource not found")

	// ErrInvalidRelation marks a cross-entity reference that cannot hold:
	// a category parenting itself, a missing parent, or a variant that does
	// not belong to the given product.
	ErrInvalidRelation = errors.New("invalid relation")

	// ErrConflict marks an operation blocked by dependent records, such as
	// deleting a category that still has subcategories.
	ErrConflict = errors.New("conflict")
)
