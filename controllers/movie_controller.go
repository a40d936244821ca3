package controllers

import (
	"log"
	"net/http"

	"github.com/pcrantfo/3-movie-api/services"

	"github.com/gin-gonic/gin"
)

type MovieController struct {
	catalogService *services.CatalogService
}

func NewMovieController(catalogService *services.CatalogService) *MovieController {
	return &MovieController{
		catalogService: catalogService,
	}
}

func (c *MovieController) ListMovies(ctx *gin.Context) {
	movies, err := c.catalogService.List(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing movies: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, movies)
}

// GetMovieByTitle returns 200 with a null body when the title is unknown,
// matching the original API.
func (c *MovieController) GetMovieByTitle(ctx *gin.Context) {
	movie, err := c.catalogService.FindByTitle(ctx.Request.Context(), ctx.Param("title"))
	if err != nil {
		log.Printf("Error finding movie: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, movie)
}

func (c *MovieController) GetGenreDescription(ctx *gin.Context) {
	description, found, err := c.catalogService.GenreDescription(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		log.Printf("Error finding genre: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if !found {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Genre not found"})
		return
	}
	ctx.JSON(http.StatusOK, description)
}

func (c *MovieController) GetDirector(ctx *gin.Context) {
	director, err := c.catalogService.Director(ctx.Request.Context(), ctx.Param("name"))
	if err != nil {
		log.Printf("Error finding director: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if director == nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Director not found"})
		return
	}
	ctx.JSON(http.StatusOK, director)
}
