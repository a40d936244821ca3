package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	// Database Configuration
	MongoURI string
	DBName   string

	// Security Configuration
	JWTSecret     string
	TokenTTLHours int

	// Server Configuration
	Port           string
	Env            string
	AllowedOrigins []string

	// Seeder Configuration (enrichment API is optional)
	OMDBAPIKey  string
	OMDBBaseURL string
}

// LoadConfig loads the configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		// Database Configuration
		MongoURI: getEnvOrDefault("MONGO_URI", ""),
		DBName:   getEnvOrDefault("DB_NAME", "myflixdb"),

		// Security Configuration
		JWTSecret:     getEnvOrDefault("JWT_SECRET", ""),
		TokenTTLHours: getEnvIntOrDefault("TOKEN_TTL_HOURS", 24),

		// Server Configuration
		Port:           getEnvOrDefault("PORT", "8080"),
		Env:            getEnvOrDefault("GO_ENV", "development"),
		AllowedOrigins: splitEnvList(getEnvOrDefault("ALLOWED_ORIGINS", "http://localhost:1234")),

		// Seeder Configuration
		OMDBAPIKey:  getEnvOrDefault("OMDB_API_KEY", ""),
		OMDBBaseURL: getEnvOrDefault("OMDB_BASE_URL", "https://www.omdbapi.com/"),
	}

	if cfg.MongoURI == "" {
		return nil, errors.New("MONGO_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required")
	}

	return cfg, nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return defaultValue
	}
	return n
}

func splitEnvList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
