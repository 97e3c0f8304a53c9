package graph

import (
	"errors"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/domains/author"
	"library-backend/internal/domains/book"
	"library-backend/internal/domains/user"
	"library-backend/pkg/logger"
)

// Client-facing error kinds, surfaced through the GraphQL extensions
// mechanism so clients can switch on a stable code.

// InputError is a validation failure on a create operation. It carries the
// offending arguments for client display.
type InputError struct {
	Message     string
	InvalidArgs map[string]interface{}
}

func (e *InputError) Error() string { return e.Message }

func (e *InputError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code":        "BAD_USER_INPUT",
		"invalidArgs": e.InvalidArgs,
	}
}

// AuthenticationError covers wrong credentials at login and missing
// sessions on protected mutations.
type AuthenticationError struct {
	Message string
}

func (e *AuthenticationError) Error() string { return e.Message }

func (e *AuthenticationError) Extensions() map[string]interface{} {
	return map[string]interface{}{
		"code": "UNAUTHENTICATED",
	}
}

var errNotAuthenticated = &AuthenticationError{Message: "not authenticated"}

// errInternal is what clients see for store or token-service failures.
// The detail stays in the logs.
var errInternal = errors.New("internal server error")

// isValidationError reports whether err is a client input problem rather
// than an upstream failure.
func isValidationError(err error) bool {
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return true
	}
	return errors.Is(err, book.ErrDuplicateTitle) ||
		errors.Is(err, book.ErrInvalidTitle) ||
		errors.Is(err, author.ErrInvalidName) ||
		errors.Is(err, author.ErrDuplicateName) ||
		errors.Is(err, user.ErrDuplicateUsername) ||
		errors.Is(err, user.ErrInvalidUsername)
}

// mapMutationError translates a service error for the wire: validation
// failures keep their message and gain the offending arguments; anything
// else is logged and replaced by an opaque failure.
func mapMutationError(op string, err error, invalidArgs map[string]interface{}) error {
	if isValidationError(err) {
		return &InputError{Message: err.Error(), InvalidArgs: invalidArgs}
	}
	logger.Error(op+" failed", err)
	return errInternal
}
