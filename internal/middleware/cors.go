package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORSMiddleware libera apenas os front-ends listados em CORS_ORIGINS.
// "*" reflete qualquer origem (modo dev); a comparação ignora
// maiúsculas e barra final.
func CORSMiddleware(allowed []string) gin.HandlerFunc {
	reflectAny := false
	permitted := make(map[string]bool, len(allowed))
	for _, origin := range allowed {
		origin = normalizeOrigin(origin)
		if origin == "*" {
			reflectAny = true
			continue
		}
		if origin != "" {
			permitted[origin] = true
		}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")

		if origin != "" && (reflectAny || permitted[normalizeOrigin(origin)]) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Vary", "Origin")
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set(
				"Access-Control-Allow-Headers",
				"Content-Type, Authorization",
			)
			c.Writer.Header().Set(
				"Access-Control-Allow-Methods",
				"GET, POST, PUT, PATCH, DELETE, OPTIONS",
			)
		}

		// 🔑 PRE-FLIGHT
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent) // 204
			return
		}

		c.Next()
	}
}

func normalizeOrigin(origin string) string {
	return strings.TrimRight(strings.ToLower(strings.TrimSpace(origin)), "/")
}
