package data_access

import (
	"context"

	"github.com/pcrantfo/3-movie-api/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type MovieRepository struct {
	collection *mongo.Collection
}

func NewMovieRepository(db *MongoDB) *MovieRepository {
	return &MovieRepository{
		collection: db.Collection("movies"),
	}
}

func (r *MovieRepository) List(ctx context.Context) ([]models.Movie, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}

	var movies []models.Movie
	if err = cursor.All(ctx, &movies); err != nil {
		return nil, err
	}
	return movies, nil
}

func (r *MovieRepository) FindByTitle(ctx context.Context, title string) (*models.Movie, error) {
	var movie models.Movie
	err := r.collection.FindOne(ctx, bson.M{"title": title}).Decode(&movie)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie, nil
}

// FindGenreByName returns the genre sub-record of the first movie whose
// genre matches the given name.
func (r *MovieRepository) FindGenreByName(ctx context.Context, name string) (*models.Genre, error) {
	var movie models.Movie
	err := r.collection.FindOne(ctx, bson.M{"genre.name": name}).Decode(&movie)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie.Genre, nil
}

// FindDirectorByName returns the director sub-record of the first movie
// directed by the given name.
func (r *MovieRepository) FindDirectorByName(ctx context.Context, name string) (*models.Director, error) {
	var movie models.Movie
	err := r.collection.FindOne(ctx, bson.M{"director.name": name}).Decode(&movie)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &movie.Director, nil
}

// InsertMany is used by the seeder only; movies are immutable through the API.
func (r *MovieRepository) InsertMany(ctx context.Context, movies []models.Movie) error {
	docs := make([]interface{}, len(movies))
	for i := range movies {
		docs[i] = movies[i]
	}
	_, err := r.collection.InsertMany(ctx, docs)
	return err
}
