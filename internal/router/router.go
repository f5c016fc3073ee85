package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/soupmate/soupmate-api/internal/ai"
	"github.com/soupmate/soupmate-api/internal/config"
	"github.com/soupmate/soupmate-api/internal/handlers"
	"github.com/soupmate/soupmate-api/internal/kv"
	"github.com/soupmate/soupmate-api/internal/logger"
	"github.com/soupmate/soupmate-api/internal/middleware"
	"github.com/soupmate/soupmate-api/internal/service"
)

// SetupRouter sets up the Gin router.
func SetupRouter(cfg *config.Config, store kv.Store) *gin.Engine {
	// Create default Gin router
	r := gin.Default()

	// The client may be served from anywhere and the API carries no
	// credentials, so a wildcard origin is acceptable.
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = []string{"Content-Type", "Authorization"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	r.Use(cors.New(corsConfig))

	// Add request ID middleware for request correlation
	r.Use(logger.RequestIDMiddleware())
	r.Use(middleware.SecurityHeaders())

	// Health check route
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	})

	// Search routes setup
	searcher := NewSearcher(cfg)
	searchService := service.NewSearchService(searcher, store)
	searchHandler := handlers.NewSearchHandler(searchService)

	// Favorites routes setup
	favoritesService := service.NewFavoritesService(store)
	favoritesHandler := handlers.NewFavoritesHandler(favoritesService)

	v1 := r.Group("/v1")
	{
		// Completion calls are the expensive path; keep per-IP pressure low.
		v1.POST("/search", middleware.RateLimitByIP(5, 10, 10*time.Minute, time.Hour), searchHandler.Search)

		v1.GET("/favorites/:user_name", favoritesHandler.List)
		v1.POST("/favorites", favoritesHandler.Add)
		v1.DELETE("/favorites", favoritesHandler.Remove)
	}

	return r
}

// NewSearcher picks the search backend from configuration: one of the
// completion providers, or the local demo dataset.
func NewSearcher(cfg *config.Config) ai.Searcher {
	switch cfg.EnvVars.SearchProvider {
	case config.ProviderLocal:
		return ai.NewLocalSearcher()
	case config.ProviderOpenAI:
		return ai.NewCompletionSearcher(ai.NewOpenAICompleter(cfg.EnvVars.OpenAIAPIKey), cfg.Prompts)
	case config.ProviderAnthropic:
		return ai.NewCompletionSearcher(ai.NewAnthropicCompleter(cfg.EnvVars.AnthropicAPIKey), cfg.Prompts)
	default:
		return ai.NewCompletionSearcher(ai.NewGeminiCompleter(cfg.EnvVars.GeminiAPIKey), cfg.Prompts)
	}
}
