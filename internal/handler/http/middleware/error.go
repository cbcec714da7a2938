package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mikiasgoitom/Lectern/internal/apperror"
	"github.com/mikiasgoitom/Lectern/internal/handler/http/dto"
)

// ErrorHandler creates a Gin middleware for centralized error handling.
// Stack traces are written to the response only when exposeStack is set.
func ErrorHandler(logger *zap.Logger, exposeStack bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 {
			return
		}

		appErr := apperror.From(c.Errors.Last().Err)
		fields := []zap.Field{
			zap.Int("status_code", appErr.StatusCode),
			zap.String("kind", string(appErr.Kind)),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(RequestIDContextKey)),
			zap.Error(appErr),
		}
		if appErr.StatusCode >= http.StatusInternalServerError {
			logger.Error("Unhandled application error", fields...)
		} else {
			logger.Debug("Request rejected", fields...)
		}

		if c.Writer.Written() {
			return
		}

		resp := dto.ErrorResponse{Success: false, Message: appErr.Message}
		if exposeStack {
			resp.Stack = appErr.Stack()
		}
		c.AbortWithStatusJSON(appErr.StatusCode, resp)
	}
}

// Recovery turns panics into the standard 500 envelope.
func Recovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered any) {
		logger.Error("Recovered from panic",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("request_id", c.GetString(RequestIDContextKey)),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.ErrorResponse{
			Success: false,
			Message: "Internal Server Error",
		})
	})
}
