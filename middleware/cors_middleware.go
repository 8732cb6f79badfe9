package middleware

import (
	"time"

	"twscreener/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func CORS(cfg *config.ConfigManager) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins: cfg.GetConfig().FrontendUrls,
		AllowMethods: []string{"GET", "POST", "PATCH", "HEAD", "OPTIONS"},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			"X-Requested-With",
		},
		ExposeHeaders: []string{"Content-Length", "Retry-After"},
		// preflight cache
		MaxAge: 12 * time.Hour,
	})
}
