package book

import "errors"

var (
	// Validation errors
	ErrInvalidTitle = errors.New("book title is invalid")

	// Business rule errors
	ErrBookNotFound   = errors.New("book not found")
	ErrDuplicateTitle = errors.New("book with this title already exists")

	// Integrity errors - a book's author reference must always resolve
	ErrDanglingAuthor = errors.New("book references a missing author")
)
