package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows the configured origins. Credentials are only allowed when the
// origins are listed explicitly.
func CORS(origins []string) func(http.Handler) http.Handler {
	wildcard := len(origins) == 0
	for _, o := range origins {
		if o == "*" {
			wildcard = true
		}
	}
	if wildcard {
		origins = []string{"*"}
	}

	return cors.New(cors.Options{
		AllowedOrigins:   origins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: !wildcard,
		MaxAge:           300,
	}).Handler
}
