package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/soupmate/soupmate-api/internal/logger"
	"github.com/soupmate/soupmate-api/internal/models"
	"github.com/soupmate/soupmate-api/internal/service"
	"go.uber.org/zap"
)

// SearchHandler is the handler for recipe search requests.
type SearchHandler struct {
	Service *service.SearchService
}

// NewSearchHandler is the constructor function for initializing a new SearchHandler.
func NewSearchHandler(searchService *service.SearchService) *SearchHandler {
	return &SearchHandler{Service: searchService}
}

// Search runs a recipe search for the given query and filter state.
func (h *SearchHandler) Search(c *gin.Context) {
	var request struct {
		Query   string         `json:"query"`
		Filters models.Filters `json:"filters"`
	}

	if err := c.BindJSON(&request); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request: " + err.Error()})
		return
	}

	resp, err := h.Service.Search(c.Request.Context(), request.Query, request.Filters)
	if err != nil {
		logger.Get().Error("search failed", zap.String("query", request.Query), zap.Error(err))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
