package author

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines the interface for Author data access operations
type Repository interface {
	// Count returns the number of authors in the collection
	Count(ctx context.Context) (int64, error)

	// FindByName retrieves an author by exact name
	// Errors: ErrAuthorNotFound if not exists
	FindByName(ctx context.Context, name string) (*Author, error)

	// List retrieves all authors, unresolved (no book data attached)
	List(ctx context.Context) ([]Author, error)

	// Create inserts a new author with bookCount = 0 and no birth year.
	// Returns: created author including its assigned id
	// Errors: ErrDuplicateName if the name is taken
	Create(ctx context.Context, name string) (*Author, error)

	// SetBorn finds by name and sets the birth year.
	// Returns: the updated author
	// Errors: ErrAuthorNotFound if no author matches
	SetBorn(ctx context.Context, name string, born int) (*Author, error)

	// IncrementBookCount atomically adds 1 to bookCount.
	// Relies on per-document atomic update semantics of the store, so a
	// concurrent increment for the same author cannot be lost.
	// Errors: ErrAuthorNotFound if no author matches
	IncrementBookCount(ctx context.Context, id primitive.ObjectID) error

	// UpsertAndIncrement is the atomic "create author if absent, then
	// increment and return" operation keyed by name. A single store
	// round-trip, so two concurrent calls for the same new name can
	// neither duplicate the author nor lose an increment.
	UpsertAndIncrement(ctx context.Context, name string) (*Author, error)
}
