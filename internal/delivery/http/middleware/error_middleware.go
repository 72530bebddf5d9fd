package middleware

import (
	"errors"
	"net/http"

	"go-hiring-pipeline/internal/delivery/http/response"
	"go-hiring-pipeline/pkg/apperror"
	"go-hiring-pipeline/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler drains errors pushed onto the gin context by handlers
// and renders them through the response envelope. Internal errors are
// logged server-side and never exposed to clients.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) > 0 {
			err := c.Errors.Last().Err
			var appErr *apperror.AppError
			if errors.As(err, &appErr) {
				if appErr.Code >= http.StatusInternalServerError {
					logger.Log.Error("Request failed", "path", c.FullPath(), "error", appErr.Err)
				}
				response.Error(c, appErr.Code, appErr.Message, nil)
			} else {
				logger.Log.Error("Unhandled error", "path", c.FullPath(), "error", err)
				response.Error(c, http.StatusInternalServerError, "An unexpected error occurred. Please try again later.", nil)
			}
		}
	}
}
