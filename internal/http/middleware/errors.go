package middleware

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/shaharman18/porfolio-shaharman-backend/internal/utils"
)

// ErrorHandler is the single error boundary: it maps any error attached to
// the context onto the uniform response shape, logging path and message
// server-side. The stack field carries the wrapped error chain and is only
// included outside production.
func ErrorHandler(log *slog.Logger, includeStack bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		appErr := utils.AsAppError(c.Errors.Last().Err)
		log.Error("request failed",
			"path", c.Request.URL.Path,
			"status", appErr.Status,
			"message", appErr.Message,
			"error", appErr.Err,
		)

		if c.Writer.Written() {
			return
		}

		body := utils.ErrorResponse{Message: appErr.Message, Detail: appErr.Detail}
		if includeStack && appErr.Err != nil {
			body.Stack = appErr.Err.Error()
		}
		c.JSON(appErr.Status, body)
	}
}
