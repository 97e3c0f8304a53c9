package author

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Author represents the core Author entity.
// This is the domain model, independent of API concerns.
//
// BookCount is a stored counter maintained incrementally at book-creation
// time (never recomputed by a collection scan at read time). Invariant:
// it equals the number of books whose author reference is this author's id.
type Author struct {
	// Identity - assigned by the store on insert; immutable
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// Name is required. Uniqueness is enforced by an index so that
	// concurrent implicit creation cannot produce duplicates.
	Name string `bson:"name" json:"name"`

	// Born is the birth year; absent until set via editAuthor
	Born *int `bson:"born,omitempty" json:"born,omitempty"`

	// Derived counter, see invariant above
	BookCount int `bson:"bookCount" json:"bookCount"`
}
