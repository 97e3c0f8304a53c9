package author

import "context"

// Service defines business logic operations for the Author domain
type Service interface {
	// Count returns the total number of authors
	Count(ctx context.Context) (int64, error)

	// List returns all authors with their stored bookCount
	List(ctx context.Context) ([]Author, error)

	// EditAuthor sets the birth year of the named author.
	// Contract: a missing subject is a no-op, not an error - the method
	// returns (nil, nil) and creates no record.
	EditAuthor(ctx context.Context, input EditAuthorInput) (*Author, error)
}
