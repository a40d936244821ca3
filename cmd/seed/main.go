package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/pcrantfo/3-movie-api/config"
	"github.com/pcrantfo/3-movie-api/data_access"
	"github.com/pcrantfo/3-movie-api/helper"
	"github.com/pcrantfo/3-movie-api/models"

	"github.com/jaswdr/faker"
	"github.com/joho/godotenv"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// The API never writes movies; this binary is their external lifecycle.
// It loads a catalog from CSV, optionally enriches it via OMDB, and can
// generate demo users with bcrypt-hashed passwords.
func main() {
	startTime := time.Now()

	if err := godotenv.Load(); err == nil {
		fmt.Println("Loaded .env")
	}

	moviesFile := flag.String("movies-file", "", "CSV file with the movie catalog")
	userCount := flag.Int("users", 0, "Number of demo users to generate")
	userPassword := flag.String("user-password", "password1", "Plaintext password for generated demo users")
	fetchExternal := flag.Bool("fetch-external", false, "Enrich catalog entries via the OMDB API")
	omdbRateLimit := flag.Int("omdb-rate-limit", 4, "Requests per second to the OMDB API")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	mongodb, err := data_access.NewMongoDB(cfg.MongoURI, cfg.DBName)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB:", err)
	}
	defer mongodb.Close(context.Background())

	if err := mongodb.EnsureUserIndexes(context.Background()); err != nil {
		log.Fatal("Failed to create user indexes:", err)
	}

	ctx := context.Background()

	if *moviesFile != "" {
		movies, err := helper.LoadMoviesFromCSV(*moviesFile)
		if err != nil {
			log.Fatalf("Failed to load %s: %v", *moviesFile, err)
		}

		if *fetchExternal {
			enrichMovies(ctx, cfg, movies, *omdbRateLimit)
		}

		movieRepo := data_access.NewMovieRepository(mongodb)
		if err := movieRepo.InsertMany(ctx, movies); err != nil {
			log.Fatal("Failed to insert movies:", err)
		}
		fmt.Printf("Inserted %d movies\n", len(movies))
	}

	if *userCount > 0 {
		users, err := generateUsers(*userCount, *userPassword)
		if err != nil {
			log.Fatal("Failed to generate users:", err)
		}

		userRepo := data_access.NewUserRepository(mongodb)
		inserted := 0
		for i := range users {
			if err := userRepo.Create(ctx, &users[i]); err != nil {
				// Duplicate usernames from faker are skipped, not fatal
				log.Printf("Skipping user %s: %v", users[i].Username, err)
				continue
			}
			inserted++
		}
		fmt.Printf("Inserted %d users\n", inserted)
	}

	fmt.Printf("Done in %s\n", time.Since(startTime).Round(time.Millisecond))
}

// enrichMovies fills empty fields from OMDB, paced by a simple ticker.
// Enrichment failures leave the CSV values in place.
func enrichMovies(ctx context.Context, cfg *config.Config, movies []models.Movie, ratePerSecond int) {
	client := data_access.NewOMDBClient(cfg.OMDBAPIKey, cfg.OMDBBaseURL)
	ticker := time.NewTicker(time.Second / time.Duration(ratePerSecond))
	defer ticker.Stop()

	for i := range movies {
		<-ticker.C
		fetched, err := client.FetchMovie(ctx, movies[i].Title)
		if err != nil {
			log.Printf("OMDB lookup failed for %q: %v", movies[i].Title, err)
			continue
		}
		if movies[i].Description == "" {
			movies[i].Description = fetched.Description
		}
		if movies[i].Genre.Name == "" {
			movies[i].Genre.Name = fetched.Genre.Name
		}
		if movies[i].Director.Name == "" {
			movies[i].Director.Name = fetched.Director.Name
		}
		if movies[i].ImagePath == "" {
			movies[i].ImagePath = fetched.ImagePath
		}
	}
}

func generateUsers(count int, password string) ([]models.User, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	f := faker.New()
	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		person := f.Person()
		// usernames must be alphanumeric and at least 5 characters
		username := fmt.Sprintf("%s%d", f.Lorem().Word(), f.IntBetween(1000, 9999))

		users = append(users, models.User{
			Username:  username,
			Password:  string(hashed),
			Email:     person.Contact().Email,
			Name:      person.Name(),
			BirthDate: f.Time().Time(time.Now().AddDate(-18, 0, 0)).Format("2006-01-02"),
			CreatedAt: time.Now(),
			Favorites: []primitive.ObjectID{},
		})
	}
	return users, nil
}
