package user

import "context"

// Service defines business logic operations for the User domain
type Service interface {
	// CreateUser creates a user.
	// Errors: validation errors, ErrDuplicateUsername
	CreateUser(ctx context.Context, input CreateUserInput) (*User, error)

	// Login authenticates and returns a signed bearer token embedding
	// {username, id}.
	// Errors: ErrWrongCredentials for an unknown username or a wrong
	// password, indistinguishably
	Login(ctx context.Context, input LoginInput) (string, error)

	// GetByID loads the user behind a verified token claim. The id is the
	// hex form carried in the claim; a malformed id maps to
	// ErrUserNotFound.
	GetByID(ctx context.Context, id string) (*User, error)
}
