package domain

import "errors"

// Sentinel errors for the todo domain. Use errors.Is() to check these.
var (
	// ErrListNotFound indicates the requested list does not exist.
	ErrListNotFound = errors.New("list not found")

	// ErrItemNotFound indicates the requested item does not exist.
	ErrItemNotFound = errors.New("item not found")

	// ErrInvalidList indicates the list violates domain constraints.
	ErrInvalidList = errors.New("invalid list")

	// ErrInvalidItem indicates the item violates domain constraints,
	// including a list_id that does not reference an existing list.
	ErrInvalidItem = errors.New("invalid item")
)

// IsValidation reports whether err is one of the validation sentinels.
func IsValidation(err error) bool {
	return errors.Is(err, ErrInvalidList) || errors.Is(err, ErrInvalidItem)
}

// IsNotFound reports whether err is one of the not-found sentinels.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrListNotFound) || errors.Is(err, ErrItemNotFound)
}
