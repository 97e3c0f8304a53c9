package book

import (
	"go.mongodb.org/mongo-driver/bson/primitive"

	"library-backend/internal/domains/author"
)

// Book represents the core Book entity as persisted.
//
// AuthorID is a non-owning foreign key to the authors collection. The
// relationship is never stored bidirectionally - the author side is always
// reconstructed by query - so there is no dual write to drift apart.
type Book struct {
	// Identity - assigned by the store on insert; immutable
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// Title is required and unique across the collection (index-enforced)
	Title string `bson:"title" json:"title"`

	// Foreign key to exactly one author
	AuthorID primitive.ObjectID `bson:"author" json:"author"`

	// Published year; optional at the API layer
	Published *int `bson:"published,omitempty" json:"published,omitempty"`

	// Ordered genre list, possibly empty, never nil when persisted
	Genres []string `bson:"genres" json:"genres"`
}

// WithAuthor is a Book with its author reference resolved to the full
// record. Produced by the repository join; every instance has a populated
// Author or the producing call failed entirely.
type WithAuthor struct {
	Book   `bson:",inline"`
	Author author.Author `bson:"authorDoc" json:"authorDoc"`
}
