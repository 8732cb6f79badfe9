package middleware

import (
	"net/http"
	"strconv"
	"time"

	localCache "twscreener/cache"
	"twscreener/config"
	"twscreener/model"

	"github.com/gin-gonic/gin"
	"github.com/patrickmn/go-cache"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"
)

const retryAfterSeconds = 5

func RateLimiter(cfg *config.ConfigManager) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		current := cfg.GetConfig()
		if !current.RateLimiter {
			ctx.Next()
			return
		}
		key := limiterKey(ctx.ClientIP(), current.RatePerSecond, current.RateBurst)

		var limiter *rate.Limiter
		if val, found := localCache.RateLimiterCache.Get(key); found {
			limiter = val.(*rate.Limiter)
		} else {
			limiter = rate.NewLimiter(rate.Limit(current.RatePerSecond), current.RateBurst)
			localCache.RateLimiterCache.Set(key, limiter, cache.DefaultExpiration)
		}

		if !limiter.Allow() {
			ctx.Header("Retry-After", strconv.Itoa(retryAfterSeconds))
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, model.Response{
				Success: false,
				Message: "Too many requests. Please wait a few seconds before trying again.",
				Error:   "rate_limit_exceeded",
			})
			return
		}

		ctx.Next()
	}
}

// limiterKey includes the limits so a config change starts fresh buckets.
func limiterKey(ip string, perSecond float64, burst int) string {
	return ip + "|" + strconv.FormatFloat(perSecond, 'g', -1, 64) + "|" + strconv.Itoa(burst)
}

func RecoveryMiddleware(c *gin.Context) {
	defer func() {
		if err := recover(); err != nil {
			log.Error().
				Interface("panic", err).
				Str("path", c.Request.URL.Path).
				Str("method", c.Request.Method).
				Msg("PANIC_RECOVERED")

			c.AbortWithStatusJSON(http.StatusInternalServerError, model.Response{
				Success: false,
				Message: "Internal server error",
				Error:   "unexpected_panic",
			})
		}
	}()
	c.Next()
}

func ZerologMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		if path == "/api/health" || path == "/openapi.yaml" || path == "/openapi.json" {
			c.Next()
			return
		}

		start := time.Now()
		query := c.Request.URL.RawQuery

		c.Next()
		latency := time.Since(start)

		log.Info().
			Str("method", c.Request.Method).
			Str("path", path).
			Str("query", query).
			Int("status", c.Writer.Status()).
			Dur("latency", latency).
			Msg("HTTP Request")
	}
}
