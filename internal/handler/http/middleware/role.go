package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Lectern/internal/apperror"
	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
)

// RequireRoles lets the request through only when the session role is one of roles.
// It must run after AuthMiddleWare.
func RequireRoles(roles ...entity.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims, ok := ClaimsFromContext(c)
		if !ok {
			_ = c.Error(apperror.Unauthorized("You must be logged in to access this resource"))
			c.Abort()
			return
		}
		for _, role := range roles {
			if claims.Role == role {
				c.Next()
				return
			}
		}
		_ = c.Error(apperror.Forbidden("You do not have permission to view this route"))
		c.Abort()
	}
}
