package middleware

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// developmentOrigins are accepted when no explicit origin list is configured
// outside production. They cover the local web client and the Vite dev server.
var developmentOrigins = []string{
	"http://localhost:3000",
	"http://localhost:5173",
}

// SetupCORS configures cross-origin access for the browser client; the
// Twilio webhooks are server-to-server and unaffected by this policy
func SetupCORS(env string) gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(env),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	})
}

func allowedOrigins(env string) []string {
	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		return splitOrigins(raw)
	}

	if env == "prod" {
		log.Fatal("CORS_ALLOWED_ORIGINS must be set in production")
	}

	return developmentOrigins
}

func splitOrigins(raw string) []string {
	var origins []string
	for _, part := range strings.Split(raw, ",") {
		if origin := strings.TrimSpace(part); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
