package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/shaharman18/porfolio-shaharman-backend/internal/services"
	"github.com/shaharman18/porfolio-shaharman-backend/internal/utils"
)

// SessionCookie is the name of the HTTP-only session cookie.
const SessionCookie = "jwt"

// UserIDKey is the context key holding the authenticated subject id.
const UserIDKey = "user_id"

// SessionAuth guards protected routes. Each request is verified
// independently; no session state survives between requests.
func SessionAuth(sessions *services.SessionManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Error(utils.ErrUnauthorized("Not authorized, no token"))
			c.Abort()
			return
		}

		subject, err := sessions.Verify(token)
		if err != nil {
			c.Error(utils.ErrUnauthorized("Not authorized, token failed"))
			c.Abort()
			return
		}

		c.Set(UserIDKey, subject)
		c.Next()
	}
}
