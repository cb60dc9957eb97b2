package middleware

import "github.com/gin-gonic/gin"

// SecurityHeaders sets the response headers a JSON API wants regardless of
// route. Cross-Origin-Resource-Policy stays permissive so the resume PDF can
// be embedded by the frontend on another origin.
func SecurityHeaders() gin.HandlerFunc {
	return func(c *gin.Context) {
		h := c.Writer.Header()
		h.Set("X-Content-Type-Options", "nosniff")
		h.Set("X-Frame-Options", "DENY")
		h.Set("Referrer-Policy", "strict-origin-when-cross-origin")
		h.Set("Permissions-Policy", "camera=(), microphone=(), geolocation=()")
		h.Set("Cross-Origin-Resource-Policy", "cross-origin")
		c.Next()
	}
}
