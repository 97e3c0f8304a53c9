package user

import "errors"

var (
	// Validation errors
	ErrInvalidUsername = errors.New("username is invalid")

	// Business rule errors
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUsername = errors.New("username already taken")

	// Authentication errors. Unknown username and wrong password both map
	// here - indistinguishable to the caller.
	ErrWrongCredentials = errors.New("wrong credentials")
)
