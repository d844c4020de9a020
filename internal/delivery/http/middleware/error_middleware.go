package middleware

import (
	"errors"
	"net/http"

	"interview-tracker/internal/delivery/http/response"
	"interview-tracker/internal/domain"
	"interview-tracker/pkg/apperror"
	"interview-tracker/pkg/logger"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders the last error a handler attached with c.Error.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		err := c.Errors.Last().Err
		var appErr *apperror.AppError
		if !errors.As(err, &appErr) {
			appErr = apperror.Internal(err)
		}

		if appErr.Code >= http.StatusInternalServerError {
			logger.Log.Error("request failed",
				"method", c.Request.Method,
				"path", c.FullPath(),
				"request_id", c.GetString(string(domain.KeyRequestID)),
				"error", err,
			)
		}

		response.Error(c, appErr.Code, appErr.Message, appErr.Detail)
	}
}

// Recovery converts a panic into the generic 500 envelope.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Log.Error("panic recovered",
			"path", c.Request.URL.Path,
			"request_id", c.GetString(string(domain.KeyRequestID)),
			"panic", recovered,
		)
		response.Error(c, http.StatusInternalServerError, "Internal Server Error", nil)
		c.Abort()
	})
}
