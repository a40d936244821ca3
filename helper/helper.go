package helper

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/pcrantfo/3-movie-api/models"
)

// LoadMoviesFromCSV reads a movie catalog from a header-indexed CSV file.
// Recognized columns: title, description, genre, genre_description,
// director, director_bio, director_birth_year, director_death_year,
// image_path, featured. Only title is mandatory.
func LoadMoviesFromCSV(path string) ([]models.Movie, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	reader := csv.NewReader(file)

	header, err := reader.Read()
	if err != nil {
		return nil, err
	}

	index := make(map[string]int, len(header))
	for i, column := range header {
		index[column] = i
	}
	if _, ok := index["title"]; !ok {
		return nil, fmt.Errorf("title column not found in %s", path)
	}

	field := func(row []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(row) {
			return ""
		}
		return row[i]
	}

	var movies []models.Movie
	for {
		row, err := reader.Read()
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}

		birthYear, _ := strconv.Atoi(field(row, "director_birth_year"))
		deathYear, _ := strconv.Atoi(field(row, "director_death_year"))
		featured, _ := strconv.ParseBool(field(row, "featured"))

		movies = append(movies, models.Movie{
			Title:       field(row, "title"),
			Description: field(row, "description"),
			Genre: models.Genre{
				Name:        field(row, "genre"),
				Description: field(row, "genre_description"),
			},
			Director: models.Director{
				Name:      field(row, "director"),
				Bio:       field(row, "director_bio"),
				BirthYear: birthYear,
				DeathYear: deathYear,
			},
			ImagePath: field(row, "image_path"),
			Featured:  featured,
		})
	}

	return movies, nil
}
