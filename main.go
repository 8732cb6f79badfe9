package main

import (
	"context"
	"runtime"

	"twscreener/config"
	"twscreener/controller"
	"twscreener/routes"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	runtime.GOMAXPROCS(runtime.NumCPU())
	sysConfigs, err := config.LoadConfigs()
	if err != nil {
		log.Fatal().Err(err).Msg("Error loading configuration")
	}

	if sysConfigs.Config.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	cfgManager := config.NewConfigManager(sysConfigs.Runtime())
	controller.ApplyLogLevel(sysConfigs.Config.Debug)

	modelClient, err := routes.NewModelClient(context.Background(), sysConfigs)
	if err != nil {
		log.Fatal().Err(err).Msg("Error creating model client")
	}

	router := routes.SetupRouter(sysConfigs, cfgManager, modelClient)

	port := sysConfigs.Config.Port
	log.Info().Str("port", port).Msg("Server starting")
	if err := router.Run("0.0.0.0:" + port); err != nil {
		log.Fatal().Err(err).Msg("Server failed to start")
	}
}

func init() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	log.Logger = log.With().Logger()
}
