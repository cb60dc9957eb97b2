package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// CORS allows the configured origins plus any localhost origin, with
// credentials, so the admin frontend can carry the session cookie.
func CORS(allowedOrigins []string) gin.HandlerFunc {
	allowedMap := map[string]struct{}{}
	for _, origin := range allowedOrigins {
		allowedMap[origin] = struct{}{}
	}

	return func(c *gin.Context) {
		origin := c.GetHeader("Origin")
		if originAllowed(origin, allowedMap) {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
			c.Writer.Header().Set("Vary", "Origin")
			c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
			c.Writer.Header().Set("Access-Control-Allow-Headers", "Authorization, Content-Type, X-Requested-With")
			c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		}

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}
		c.Next()
	}
}

func originAllowed(origin string, allowedMap map[string]struct{}) bool {
	if origin == "" {
		return false
	}
	if _, ok := allowedMap[origin]; ok {
		return true
	}
	return strings.Contains(origin, "localhost")
}
