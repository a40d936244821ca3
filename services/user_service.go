package services

import (
	"context"
	"errors"
	"time"

	"github.com/pcrantfo/3-movie-api/data_access"
	"github.com/pcrantfo/3-movie-api/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

type UserService struct {
	userRepo UserStore
}

func NewUserService(userRepo UserStore) *UserService {
	return &UserService{userRepo: userRepo}
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.userRepo.List(ctx)
}

func (s *UserService) Get(ctx context.Context, username string) (*models.User, error) {
	return s.userRepo.FindByUsername(ctx, username)
}

// Register hashes the password and creates the user. The existence check
// is not atomic; the unique index on username backs it up, and an index
// rejection maps to the same ErrDuplicateUser.
func (s *UserService) Register(ctx context.Context, req *models.RegisterRequest) (*models.User, error) {
	existing, err := s.userRepo.FindByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateUser
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:  req.Username,
		Password:  string(hashedPassword),
		Email:     req.Email,
		Name:      req.Name,
		BirthDate: req.Birthday,
		CreatedAt: time.Now(),
		Favorites: []primitive.ObjectID{},
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, data_access.ErrDuplicateKey) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}

	return user, nil
}

// Update overwrites the user's profile fields; the password is re-hashed.
// Returns nil when the user does not exist.
func (s *UserService) Update(ctx context.Context, username string, req *models.UpdateUserRequest) (*models.User, error) {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	fields := &models.User{
		Username:  req.Username,
		Password:  string(hashedPassword),
		Email:     req.Email,
		Name:      req.Name,
		BirthDate: req.BirthDate,
	}

	updated, err := s.userRepo.Update(ctx, username, fields)
	if err != nil {
		if errors.Is(err, data_access.ErrDuplicateKey) {
			return nil, ErrDuplicateUser
		}
		return nil, err
	}
	return updated, nil
}

func (s *UserService) AddFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error) {
	return s.userRepo.AddFavorite(ctx, username, movieID)
}

func (s *UserService) RemoveFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error) {
	return s.userRepo.RemoveFavorite(ctx, username, movieID)
}

func (s *UserService) Delete(ctx context.Context, username string) (bool, error) {
	return s.userRepo.Delete(ctx, username)
}
