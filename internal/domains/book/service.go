package book

import "context"

// Service defines business logic operations for the Book domain
type Service interface {
	// Count returns the total number of books
	Count(ctx context.Context) (int64, error)

	// List returns all books with authors resolved, narrowed by filter
	List(ctx context.Context, filter ListFilter) ([]WithAuthor, error)

	// AddBook creates a book, implicitly creating its author on first
	// mention and bumping the author's bookCount atomically. Returns the
	// created book with the author record resolved.
	//
	// The author write and the book insert are two sequential store
	// operations: if the book insert fails the counter is not rolled
	// back. That gap is logged, never hidden.
	AddBook(ctx context.Context, input AddBookInput) (*WithAuthor, error)
}
