package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Lectern/internal/apperror"
	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
	usecasecontract "github.com/mikiasgoitom/Lectern/internal/usecase/contract"
)

// ClaimsKey holds the *entity.Claims of an authenticated request.
const ClaimsKey = "claims"

// AuthMiddleWare resolves the session cookie into claims on the gin context.
func AuthMiddleWare(userUsecase usecasecontract.IUserUseCase, cookieName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			_ = c.Error(apperror.Unauthorized("You must be logged in to access this resource"))
			c.Abort()
			return
		}

		claims, err := userUsecase.Authenticate(c.Request.Context(), token)
		if err != nil {
			_ = c.Error(err)
			c.Abort()
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}

// ClaimsFromContext returns the claims stored by AuthMiddleWare.
func ClaimsFromContext(c *gin.Context) (*entity.Claims, bool) {
	v, ok := c.Get(ClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*entity.Claims)
	return claims, ok && claims != nil
}
