package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Username string             `bson:"username" json:"username"`
	// Password holds the bcrypt hash, never the plaintext. The hash is
	// serialized in responses to preserve the original API's shape.
	Password  string    `bson:"password" json:"password"`
	Email     string    `bson:"email" json:"email"`
	Name      string    `bson:"name" json:"name"`
	BirthDate string    `bson:"birth_date" json:"birth_date"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`

	// Favorites are weak references to movie documents: an entry may point
	// to a movie that no longer exists, and duplicates are allowed.
	Favorites []primitive.ObjectID `bson:"favorites" json:"favorites"`
}
