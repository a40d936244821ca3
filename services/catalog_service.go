package services

import (
	"context"

	"github.com/pcrantfo/3-movie-api/models"
)

// CatalogService serves the read-only movie catalog.
type CatalogService struct {
	movieRepo MovieStore
}

func NewCatalogService(movieRepo MovieStore) *CatalogService {
	return &CatalogService{movieRepo: movieRepo}
}

func (s *CatalogService) List(ctx context.Context) ([]models.Movie, error) {
	return s.movieRepo.List(ctx)
}

func (s *CatalogService) FindByTitle(ctx context.Context, title string) (*models.Movie, error) {
	return s.movieRepo.FindByTitle(ctx, title)
}

// GenreDescription projects the description of the first matching genre.
func (s *CatalogService) GenreDescription(ctx context.Context, name string) (string, bool, error) {
	genre, err := s.movieRepo.FindGenreByName(ctx, name)
	if err != nil {
		return "", false, err
	}
	if genre == nil {
		return "", false, nil
	}
	return genre.Description, true, nil
}

func (s *CatalogService) Director(ctx context.Context, name string) (*models.Director, error) {
	return s.movieRepo.FindDirectorByName(ctx, name)
}
