package author

import "errors"

var (
	// Validation errors
	ErrInvalidName = errors.New("author name is invalid")
	ErrNameTooLong = errors.New("author name exceeds maximum length")

	// Business rule errors
	ErrAuthorNotFound = errors.New("author not found")
	ErrDuplicateName  = errors.New("author with this name already exists")
)
