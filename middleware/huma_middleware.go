package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/rs/zerolog/log"
)

const AdminKeyHeader = "X-Admin-Key"

// HumaAdminKeyMiddleware admits requests carrying the configured admin key.
// An empty key closes the operation to everyone.
func HumaAdminKeyMiddleware(api huma.API, adminKey string) func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		if adminKey == "" {
			huma.WriteErr(api, ctx, http.StatusForbidden, "Forbidden: admin key is not configured")
			return
		}

		given := ctx.Header(AdminKeyHeader)
		if given == "" || subtle.ConstantTimeCompare([]byte(given), []byte(adminKey)) != 1 {
			log.Warn().Str("path", ctx.URL().Path).Msg("Rejected admin request")
			huma.WriteErr(api, ctx, http.StatusUnauthorized, "Unauthorized")
			return
		}
		next(ctx)
	}
}
