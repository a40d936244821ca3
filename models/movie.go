package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Genre is the genre sub-record embedded in each movie document.
type Genre struct {
	Name        string `bson:"name" json:"name"`
	Description string `bson:"description" json:"description"`
}

// Director is the director sub-record embedded in each movie document.
type Director struct {
	Name      string `bson:"name" json:"name"`
	Bio       string `bson:"bio" json:"bio"`
	BirthYear int    `bson:"birth_year" json:"birth_year,omitempty"`
	DeathYear int    `bson:"death_year" json:"death_year,omitempty"`
}

// Movie documents are read-only through the API; they are written only by
// the seeder.
type Movie struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	Title       string             `bson:"title" json:"title"`
	Description string             `bson:"description" json:"description"`
	Genre       Genre              `bson:"genre" json:"genre"`
	Director    Director           `bson:"director" json:"director"`
	ImagePath   string             `bson:"image_path" json:"image_path"`
	Featured    bool               `bson:"featured" json:"featured"`
}
