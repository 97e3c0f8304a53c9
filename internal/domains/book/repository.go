package book

import "context"

// Repository defines the interface for Book data access operations
type Repository interface {
	// Count returns the number of books in the collection
	Count(ctx context.Context) (int64, error)

	// List retrieves all books with the author reference resolved to the
	// full author record in the same call (joined, not lazy). Guarantee:
	// every returned book has a populated author, or the call fails
	// entirely - no partial population.
	List(ctx context.Context) ([]WithAuthor, error)

	// Create inserts a new book.
	// Errors: ErrDuplicateTitle on a title collision (index-enforced)
	Create(ctx context.Context, b *Book) (*Book, error)
}
