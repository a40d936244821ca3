package controllers

import (
	"context"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/pcrantfo/3-movie-api/middleware"
	"github.com/pcrantfo/3-movie-api/models"
	"github.com/pcrantfo/3-movie-api/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MockUserStore mocks services.UserStore
type MockUserStore struct {
	mock.Mock
}

func (m *MockUserStore) List(ctx context.Context) ([]models.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.User), args.Error(1)
}

func (m *MockUserStore) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) Create(ctx context.Context, user *models.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserStore) Update(ctx context.Context, username string, user *models.User) (*models.User, error) {
	args := m.Called(ctx, username, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) AddFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, username, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) RemoveFavorite(ctx context.Context, username string, movieID primitive.ObjectID) (*models.User, error) {
	args := m.Called(ctx, username, movieID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.User), args.Error(1)
}

func (m *MockUserStore) Delete(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

// MockMovieStore mocks services.MovieStore
type MockMovieStore struct {
	mock.Mock
}

func (m *MockMovieStore) List(ctx context.Context) ([]models.Movie, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]models.Movie), args.Error(1)
}

func (m *MockMovieStore) FindByTitle(ctx context.Context, title string) (*models.Movie, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Movie), args.Error(1)
}

func (m *MockMovieStore) FindGenreByName(ctx context.Context, name string) (*models.Genre, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Genre), args.Error(1)
}

func (m *MockMovieStore) FindDirectorByName(ctx context.Context, name string) (*models.Director, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Director), args.Error(1)
}

// newTestRouter assembles the API route table over mock stores, mirroring
// the wiring in main.
func newTestRouter(userRepo *MockUserStore, movieRepo *MockMovieStore) (*gin.Engine, *services.AuthService) {
	gin.SetMode(gin.TestMode)

	authService := services.NewAuthService(userRepo, "test-secret", time.Hour)
	userService := services.NewUserService(userRepo)
	catalogService := services.NewCatalogService(movieRepo)

	authController := NewAuthController(authService)
	movieController := NewMovieController(catalogService)
	userController := NewUserController(userService)

	r := gin.New()
	r.GET("/movies", movieController.ListMovies)
	r.GET("/users", userController.ListUsers)
	r.POST("/users", userController.Register)
	r.POST("/login", authController.Login)

	protected := r.Group("/")
	protected.Use(middleware.Auth(authService))
	{
		protected.GET("/movies/:title", movieController.GetMovieByTitle)
		protected.GET("/movies/genre/:name", movieController.GetGenreDescription)
		protected.GET("/movies/director/:name", movieController.GetDirector)
		protected.GET("/users/:username", userController.GetUser)
		protected.PUT("/users/:username", userController.UpdateUser)
		protected.POST("/users/:username/movies/:movieID", userController.AddFavorite)
		protected.DELETE("/users/:username/movies/:movieID", userController.RemoveFavorite)
		protected.DELETE("/users/:username", userController.DeleteUser)
	}

	return r, authService
}

func bearerToken(t *testing.T, authService *services.AuthService, username string) string {
	t.Helper()
	token, err := authService.IssueToken(username)
	require.NoError(t, err)
	return "Bearer " + token
}

func doRequest(r *gin.Engine, method, path, token string, body io.Reader) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
