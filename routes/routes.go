package routes

import (
	"context"
	"fmt"
	"time"

	"twscreener/client"
	"twscreener/config"
	"twscreener/controller"
	"twscreener/middleware"
	"twscreener/service"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humagin"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// NewModelClient picks the transport named in the config.
func NewModelClient(ctx context.Context, cfg *config.SystemConfigs) (client.ModelClient, error) {
	env := cfg.Config
	timeout := time.Duration(env.RequestTimeoutSeconds) * time.Second

	switch env.Transport {
	case "rest":
		return client.NewGeminiRestClient(env.GeminiBaseUrl, env.GeminiApiKey, env.GeminiModel, timeout), nil
	case "sdk", "":
		return client.NewGeminiClient(ctx, env.GeminiApiKey, env.GeminiModel)
	default:
		return nil, fmt.Errorf("unknown transport %q", env.Transport)
	}
}

func SetupRouter(cfg *config.SystemConfigs, cfgManager *config.ConfigManager, modelClient client.ModelClient) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RecoveryMiddleware)
	r.Use(middleware.ZerologMiddleware())
	r.Use(middleware.CORS(cfgManager))
	r.Use(middleware.RateLimiter(cfgManager))

	// --- 1. Services (Dependency Injection) ---
	timeout := time.Duration(cfg.Config.RequestTimeoutSeconds) * time.Second
	querySvc := service.NewQueryService(modelClient, timeout, cfg.Config.SearchEnabled())
	dashboardSvc := service.NewDashboardService(querySvc, service.NewCoordinator())

	// --- 2. Routes & Controllers ---
	api := r.Group("/api")
	{
		// Health Check
		controller.NewHealthController().RegisterRoutes(api)
	}

	humaApi := humagin.New(r, huma.DefaultConfig("Taiwan Stock Screener API", "1.0.0"))
	controller.NewDashboardController(dashboardSvc).RegisterRoutes(humaApi)
	controller.NewStockController(querySvc).RegisterRoutes(humaApi)
	controller.NewConfigController(cfgManager, cfg.Config.AdminKey).RegisterRoutes(humaApi)

	log.Info().Str("transport", cfg.Config.Transport).Str("model", cfg.Config.GeminiModel).Msg("Routes registered")
	return r
}
