package services

import (
	"context"

	"github.com/pcrantfo/3-movie-api/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// UserStore is the slice of the user repository the services depend on.
// Satisfied by *data_access.UserRepository.
type UserStore interface {
	List(ctx context.Context) ([]models.User, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Update(ctx context.Context, username string, user *models.User) (*models.User, error)
	AddFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error)
	RemoveFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error)
	Delete(ctx context.Context, username string) (bool, error)
}

// MovieStore is the read-only movie repository surface.
// Satisfied by *data_access.MovieRepository.
type MovieStore interface {
	List(ctx context.Context) ([]models.Movie, error)
	FindByTitle(ctx context.Context, title string) (*models.Movie, error)
	FindGenreByName(ctx context.Context, name string) (*models.Genre, error)
	FindDirectorByName(ctx context.Context, name string) (*models.Director, error)
}
