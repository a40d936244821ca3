package helper

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "movies.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadMoviesFromCSV(t *testing.T) {
	t.Run("full catalog", func(t *testing.T) {
		path := writeCSV(t, "title,description,genre,genre_description,director,director_bio,director_birth_year,director_death_year,image_path,featured\n"+
			"Inception,A thief steals secrets through dreams.,Sci-Fi,Speculative fiction.,Christopher Nolan,British-American filmmaker.,1970,,inception.png,true\n"+
			"Psycho,A secretary on the run.,Horror,Made to frighten.,Alfred Hitchcock,Master of suspense.,1899,1980,psycho.png,false\n")

		movies, err := LoadMoviesFromCSV(path)
		require.NoError(t, err)
		require.Len(t, movies, 2)

		assert.Equal(t, "Inception", movies[0].Title)
		assert.Equal(t, "Sci-Fi", movies[0].Genre.Name)
		assert.Equal(t, 1970, movies[0].Director.BirthYear)
		assert.Zero(t, movies[0].Director.DeathYear)
		assert.True(t, movies[0].Featured)

		assert.Equal(t, 1980, movies[1].Director.DeathYear)
		assert.False(t, movies[1].Featured)
	})

	t.Run("title column only", func(t *testing.T) {
		path := writeCSV(t, "title\nInception\n")

		movies, err := LoadMoviesFromCSV(path)
		require.NoError(t, err)
		require.Len(t, movies, 1)
		assert.Equal(t, "Inception", movies[0].Title)
	})

	t.Run("missing title column", func(t *testing.T) {
		path := writeCSV(t, "name,genre\nInception,Sci-Fi\n")

		_, err := LoadMoviesFromCSV(path)
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadMoviesFromCSV(filepath.Join(t.TempDir(), "nope.csv"))
		assert.Error(t, err)
	})
}
