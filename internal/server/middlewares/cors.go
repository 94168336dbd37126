package middlewares

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS builds the cross-origin policy from the configured allow-list. The
// policy is static and uniform across all routes: every method and header
// is permitted for an allowed origin, credentials included. A list of
// exactly ["*"] allows any origin.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"*"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if isWildcard(allowedOrigins) {
		// An origin func keeps credentials usable; a literal "*" would
		// forbid them per the fetch spec.
		config.AllowOriginFunc = func(origin string) bool { return true }
	} else {
		config.AllowOrigins = allowedOrigins
	}

	return cors.New(config)
}

func isWildcard(origins []string) bool {
	return len(origins) == 0 || (len(origins) == 1 && origins[0] == "*")
}
