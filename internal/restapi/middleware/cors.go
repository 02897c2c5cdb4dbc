package middleware

import (
	"net/http"

	"github.com/go-http-utils/headers"

	"github.com/gigmarket/billing-service/internal/config"
	"github.com/gigmarket/billing-service/internal/logging"
)

// CorsHeadersMiddleware adds permissive cors headers when cors checking has
// been disabled in the configuration, which is intended for local
// development setups only.
func CorsHeadersMiddleware(conf *config.SecurityConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if conf.Cors.DisableCors {
				logging.LoggerFromContext(r.Context()).Warn("sending headers to disable CORS. This configuration is not intended for production use, only for local development")
				w.Header().Set(headers.AccessControlAllowOrigin, conf.Cors.AllowOrigin)
				w.Header().Set(headers.AccessControlAllowMethods, "POST, GET, OPTIONS, PUT, DELETE")
				w.Header().Set(headers.AccessControlAllowHeaders, "content-type")
				w.Header().Set(headers.AccessControlAllowCredentials, "true")
				w.Header().Set(headers.AccessControlExposeHeaders, "Location, X-B3-TraceId")
			}

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
