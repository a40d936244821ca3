package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/pcrantfo/3-movie-api/config"
	"github.com/pcrantfo/3-movie-api/controllers"
	"github.com/pcrantfo/3-movie-api/data_access"
	"github.com/pcrantfo/3-movie-api/middleware"
	"github.com/pcrantfo/3-movie-api/services"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

const welcomeBanner = "You've chosen your movie database wisely. Users must register or login prior to accessing any data endpoints. To see all available endpoints, type '/documentation' to the end of the current URL. Enjoy!"

func setupCORS(allowedOrigins []string) gin.HandlerFunc {
	cfg := cors.DefaultConfig()
	cfg.AllowOrigins = allowedOrigins
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "Authorization"}
	return cors.New(cfg)
}

func setupRouter(cfg *config.Config, authService *services.AuthService, authController *controllers.AuthController, movieController *controllers.MovieController, userController *controllers.UserController) *gin.Engine {
	r := gin.Default()
	r.Use(setupCORS(cfg.AllowedOrigins))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, welcomeBanner)
	})
	r.GET("/documentation", func(c *gin.Context) {
		c.File("public/documentation.html")
	})

	// Public routes. The list endpoints are open in the original API even
	// though the single-item endpoints are protected; inherited as-is.
	r.GET("/movies", movieController.ListMovies)
	r.GET("/users", userController.ListUsers)
	r.POST("/users", userController.Register)
	r.POST("/login", authController.Login)

	// Protected routes
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

	return r
}

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found: %v", err)
	}

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	log.Println("Configuration loaded for environment:", cfg.Env)

	// Initialize MongoDB connection
	mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongodb.Close(context.Background())

	// Uniqueness of usernames is enforced at the store level
	if err := mongodb.EnsureUserIndexes(context.Background()); err != nil {
		log.Fatal("Failed to create user indexes:", err)
	}

	// Initialize repositories
	userRepo := data_access.NewUserRepository(mongodb)
	movieRepo := data_access.NewMovieRepository(mongodb)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, time.Duration(cfg.TokenTTLHours)*time.Hour)
	userService := services.NewUserService(userRepo)
	catalogService := services.NewCatalogService(movieRepo)

	// Initialize controllers
	authController := controllers.NewAuthController(authService)
	movieController := controllers.NewMovieController(catalogService)
	userController := controllers.NewUserController(userService)

	r := setupRouter(cfg, authService, authController, movieController, userController)

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to initialize server: %v\n", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
