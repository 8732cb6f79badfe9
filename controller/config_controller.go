package controller

import (
	"context"
	"net/http"

	"twscreener/config"
	"twscreener/middleware"
	"twscreener/model"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

type ConfigController struct {
	cfg      *config.ConfigManager
	adminKey string
}

func NewConfigController(cfg *config.ConfigManager, adminKey string) *ConfigController {
	return &ConfigController{cfg: cfg, adminKey: adminKey}
}

func (ctrl *ConfigController) RegisterRoutes(api huma.API) {
	adminMw := middleware.HumaAdminKeyMiddleware(api, ctrl.adminKey)

	huma.Register(api, huma.Operation{
		OperationID: "get-active-config",
		Method:      http.MethodGet,
		Path:        "/api/config",
		Summary:     "Get Active Configuration",
		Tags:        []string{"Config"},
	}, ctrl.getActiveConfig)

	huma.Register(api, huma.Operation{
		OperationID: "update-config",
		Method:      http.MethodPatch,
		Path:        "/api/config",
		Summary:     "Update Runtime Configuration",
		Description: "Toggles the rate limiter and debug logging without a restart. Requires the X-Admin-Key header.",
		Middlewares: huma.Middlewares{adminMw},
		Tags:        []string{"Config"},
	}, ctrl.updateConfig)
}

func (ctrl *ConfigController) getActiveConfig(ctx context.Context, input *struct{}) (*model.DefaultResponse, error) {
	return NewResponse(ctrl.cfg.GetConfig(), "Config fetch success"), nil
}

func (ctrl *ConfigController) updateConfig(ctx context.Context, input *model.ConfigPatchInput) (*model.DefaultResponse, error) {
	next := ctrl.cfg.Apply(input.Body)
	ApplyLogLevel(next.DebugMode)
	log.Info().Bool("rateLimiter", next.RateLimiter).Bool("debug", next.DebugMode).Msg("Runtime config updated")
	return NewResponse(next, "Config updated successfully"), nil
}

// ApplyLogLevel switches the global zerolog level for the debug flag.
func ApplyLogLevel(debug bool) {
	if debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
		return
	}
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
}
