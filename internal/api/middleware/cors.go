package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS builds the cross-origin middleware for the configured frontend
// origins. Credentials stay off; auth rides in the bearer header.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	})
	return c.Handler
}
