package user

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Repository defines the interface for User data access operations
type Repository interface {
	// Create inserts a new user.
	// Returns: created user including its assigned id
	// Errors: ErrDuplicateUsername if the username is taken
	Create(ctx context.Context, u *User) (*User, error)

	// FindByUsername retrieves a user by exact username
	// Errors: ErrUserNotFound if not exists
	FindByUsername(ctx context.Context, username string) (*User, error)

	// FindByID retrieves a user by id
	// Errors: ErrUserNotFound if not exists
	FindByID(ctx context.Context, id primitive.ObjectID) (*User, error)
}
