package author

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
)

// Constants for validation
const (
	MaxNameLength = 255
)

// EditAuthorInput - mutation editAuthor(name, setBornTo)
type EditAuthorInput struct {
	Name      string `json:"name"`
	SetBornTo int    `json:"setBornTo"`
}

func (i EditAuthorInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Name,
			validation.Required.Error("name is required"),
			validation.Length(1, MaxNameLength),
		),
	)
}
