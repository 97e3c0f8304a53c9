package user

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Constants for validation
const (
	MaxUsernameLength = 100
	MinUsernameLength = 3
)

// CreateUserInput - mutation createUser(username, favoriteGenre)
type CreateUserInput struct {
	Username      string `json:"username"`
	FavoriteGenre string `json:"favoriteGenre"`
}

func (i CreateUserInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Username,
			validation.Required.Error("username is required"),
			validation.Length(MinUsernameLength, MaxUsernameLength).
				Error("username must be 3-100 characters"),
		),
		validation.Field(&i.FavoriteGenre,
			validation.Required.Error("favorite genre is required"),
		),
	)
}

// LoginInput - mutation login(username, password)
type LoginInput struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (i LoginInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Username, validation.Required),
		validation.Field(&i.Password, validation.Required),
	)
}
