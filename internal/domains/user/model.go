package user

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents the core User entity.
//
// No password is stored: the login gate compares against a single
// configured placeholder credential shared by every user.
type User struct {
	// Identity - assigned by the store on insert; immutable
	ID primitive.ObjectID `bson:"_id,omitempty" json:"id"`

	// Username is required and unique (index-enforced)
	Username string `bson:"username" json:"username"`

	// FavoriteGenre is required
	FavoriteGenre string `bson:"favoriteGenre" json:"favoriteGenre"`
}
