package main

import (
	"os"
	"runtime"

	"github.com/gin-gonic/gin"
	"github.com/soupmate/soupmate-api/internal/config"
	"github.com/soupmate/soupmate-api/internal/kv"
	"github.com/soupmate/soupmate-api/internal/logger"
	"github.com/soupmate/soupmate-api/internal/router"
	"go.uber.org/zap"
)

// init is called before the main function.
func init() {
	isDev := os.Getenv("GIN_MODE") != "release"
	logger.Init(isDev)

	// Configure the runtime
	ConfigureRuntime()
}

// Entry point for the API.
func main() {
	defer logger.Sync()

	// Load the config
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Get().Fatal("failed to load config", zap.Error(err))
	}

	// Check that all ENV variables are set
	if err := cfg.CheckConfigEnvFields(); err != nil {
		logger.Get().Fatal("missing required config fields", zap.Error(err))
	}

	prompts, err := config.LoadPrompts("configs/prompts.yaml")
	if err != nil {
		logger.Get().Fatal("failed to load prompts", zap.Error(err))
	}
	cfg.Prompts = prompts

	// Key-value store: Redis when configured, in-memory otherwise.
	var store kv.Store
	if cfg.EnvVars.RedisURL != "" {
		redisStore, err := kv.NewRedisStore(cfg.EnvVars.RedisURL)
		if err != nil {
			logger.Get().Fatal("failed to connect to redis", zap.Error(err))
		}
		defer redisStore.Close()
		store = redisStore
	} else {
		logger.Get().Warn("REDIS_URL not set, favorites and search history are in-memory only")
		store = kv.NewMemoryStore()
	}

	// Create a new gin router
	gin.SetMode(gin.ReleaseMode)
	r := router.SetupRouter(cfg, store)

	// Run the server
	logger.Get().Info("starting server",
		zap.String("port", cfg.EnvVars.Port),
		zap.String("search_provider", cfg.EnvVars.SearchProvider))
	r.Run(":" + cfg.EnvVars.Port)
}

// ConfigureRuntime sets the number of operating system threads.
func ConfigureRuntime() {
	nuCPU := runtime.NumCPU()
	runtime.GOMAXPROCS(nuCPU)
	logger.Get().Info("runtime configured", zap.Int("cpus", nuCPU))
}
