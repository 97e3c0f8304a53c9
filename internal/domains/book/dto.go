package book

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"library-backend/internal/domains/author"
)

// Constants for validation
const (
	MaxTitleLength = 255
)

// AddBookInput - mutation addBook(title, author, published, genres)
type AddBookInput struct {
	Title     string   `json:"title"`
	Author    string   `json:"author"` // author name, not id
	Published *int     `json:"published,omitempty"`
	Genres    []string `json:"genres,omitempty"`
}

func (i AddBookInput) Validate() error {
	return validation.ValidateStruct(&i,
		validation.Field(&i.Title,
			validation.Required.Error("title is required"),
			validation.Length(1, MaxTitleLength),
		),
		validation.Field(&i.Author,
			validation.Required.Error("author is required"),
			validation.Length(1, author.MaxNameLength),
		),
		validation.Field(&i.Genres,
			validation.Each(validation.Required.Error("genre must not be empty")),
		),
	)
}

// ListFilter narrows allBooks results. Both fields are optional; each one
// applies as a post-filter on the already-joined result set: author name
// must match exactly, and the genre list must contain the given genre.
type ListFilter struct {
	Author *string
	Genre  *string
}

// Matches reports whether a resolved book passes the filter
func (f ListFilter) Matches(b WithAuthor) bool {
	if f.Author != nil && b.Author.Name != *f.Author {
		return false
	}
	if f.Genre != nil {
		found := false
		for _, g := range b.Genres {
			if g == *f.Genre {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
