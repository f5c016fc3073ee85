package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soupmate/soupmate-api/internal/logger"
	"github.com/soupmate/soupmate-api/internal/models"
	"github.com/soupmate/soupmate-api/internal/service"
	"go.uber.org/zap"
)

// FavoritesHandler is the handler for favorites-related requests.
type FavoritesHandler struct {
	Service *service.FavoritesService
}

// NewFavoritesHandler is the constructor function for initializing a new FavoritesHandler.
func NewFavoritesHandler(favoritesService *service.FavoritesService) *FavoritesHandler {
	return &FavoritesHandler{Service: favoritesService}
}

// List returns the stored favorites for a user.
func (h *FavoritesHandler) List(c *gin.Context) {
	userName := c.Param("user_name")

	favorites, err := h.Service.List(c.Request.Context(), userName)
	if err != nil {
		logger.Get().Error("failed to list favorites", zap.String("user_name", userName), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"favorites": favorites})
}

// Add appends a recipe to the user's favorites.
func (h *FavoritesHandler) Add(c *gin.Context) {
	var request struct {
		UserName string        `json:"userName"`
		Recipe   models.Recipe `json:"recipe"`
	}

	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if request.UserName == "" || request.Recipe.ID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userName and recipe are required"})
		return
	}

	favorites, err := h.Service.Add(c.Request.Context(), request.UserName, request.Recipe)
	if err != nil {
		logger.Get().Error("failed to add favorite",
			zap.String("user_name", request.UserName),
			zap.String("recipe_id", request.Recipe.ID),
			zap.Error(err),
		)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "favorites": favorites})
}

// Remove deletes a recipe from the user's favorites. Removing an id that was
// never added still succeeds.
func (h *FavoritesHandler) Remove(c *gin.Context) {
	var request struct {
		UserName string `json:"userName"`
		RecipeID string `json:"recipeId"`
	}

	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}
	if request.UserName == "" || request.RecipeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "userName and recipeId are required"})
		return
	}

	favorites, err := h.Service.Remove(c.Request.Context(), request.UserName, request.RecipeID)
	if err != nil {
		logger.Get().Error("failed to remove favorite",
			zap.String("user_name", request.UserName),
			zap.String("recipe_id", request.RecipeID),
			zap.Error(err),
		)
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "favorites": favorites})
}
