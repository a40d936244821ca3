package controllers

import (
	"errors"
	"fmt"
	"log"
	"net/http"

	"github.com/pcrantfo/3-movie-api/models"
	"github.com/pcrantfo/3-movie-api/services"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserController struct {
	userService *services.UserService
}

func NewUserController(userService *services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

func (c *UserController) ListUsers(ctx *gin.Context) {
	users, err := c.userService.List(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing users: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, users)
}

// GetUser returns 200 with a null body when the username is unknown,
// matching the original API.
func (c *UserController) GetUser(ctx *gin.Context) {
	user, err := c.userService.Get(ctx.Request.Context(), ctx.Param("username"))
	if err != nil {
		log.Printf("Error finding user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	ctx.JSON(http.StatusOK, user)
}

func (c *UserController) Register(ctx *gin.Context) {
	var req models.RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validationErrors(err)})
		return
	}

	user, err := c.userService.Register(ctx.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUser) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s already exists.", req.Username)})
			return
		}
		log.Printf("Error registering user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (c *UserController) UpdateUser(ctx *gin.Context) {
	var req models.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusUnprocessableEntity, gin.H{"errors": validationErrors(err)})
		return
	}

	username := ctx.Param("username")
	user, err := c.userService.Update(ctx.Request.Context(), username, &req)
	if err != nil {
		if errors.Is(err, services.ErrDuplicateUser) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s already exists.", req.Username)})
			return
		}
		log.Printf("Error updating user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if user == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s was not found.", username)})
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (c *UserController) AddFavorite(ctx *gin.Context) {
	username := ctx.Param("username")
	movieID, err := primitive.ObjectIDFromHex(ctx.Param("movieID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID"})
		return
	}

	user, err := c.userService.AddFavorite(ctx.Request.Context(), username, movieID)
	if err != nil {
		log.Printf("Error adding favorite: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if user == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s was not found.", username)})
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (c *UserController) RemoveFavorite(ctx *gin.Context) {
	username := ctx.Param("username")
	movieID, err := primitive.ObjectIDFromHex(ctx.Param("movieID"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid movie ID"})
		return
	}

	user, err := c.userService.RemoveFavorite(ctx.Request.Context(), username, movieID)
	if err != nil {
		log.Printf("Error removing favorite: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if user == nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s was not found.", username)})
		return
	}

	ctx.JSON(http.StatusOK, user)
}

func (c *UserController) DeleteUser(ctx *gin.Context) {
	username := ctx.Param("username")

	deleted, err := c.userService.Delete(ctx.Request.Context(), username)
	if err != nil {
		log.Printf("Error deleting user: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}
	if !deleted {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": fmt.Sprintf("%s was not found.", username)})
		return
	}

	ctx.Status(http.StatusNoContent)
}
