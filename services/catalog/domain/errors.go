package domain

import "errors"

// Sentinel errors for the catalog domain. Check with errors.Is();
// pkg/errhttp maps each to its HTTP status.
var (
	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrBrandNotFound indicates the requested brand does not exist.
	ErrBrandNotFound = errors.New("brand not found")

	// ErrCategoryNotFound indicates the requested category does not exist.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrInvalidBrandRef rejects a write referencing a brand id with no
	// backing row.
	ErrInvalidBrandRef = errors.New("brand id is not valid")

	// ErrInvalidCategoryRef rejects a write referencing a category id with
	// no backing row.
	ErrInvalidCategoryRef = errors.New("category id is not valid")

	// ErrDuplicateSlug indicates another item already owns the slug derived
	// from the requested name.
	ErrDuplicateSlug = errors.New("an item with this slug already exists")

	// ErrInvalidID rejects identities that are not positive integers.
	ErrInvalidID = errors.New("id is not valid")
)
