package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS lets the storefront frontend call the API from the configured origins.
// The session cookie needs credentials, so a wildcard origin is echoed back per request.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	wildcard := len(allowedOrigins) == 0 || (len(allowedOrigins) == 1 && allowedOrigins[0] == "*")

	options := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization", RequestIDHeader},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           300,
	}

	if wildcard {
		options.AllowedOrigins = nil
		options.AllowOriginFunc = func(string) bool { return true }
	}

	return cors.New(options).Handler
}
