package http

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/mikiasgoitom/Lectern/internal/apperror"
	"github.com/mikiasgoitom/Lectern/internal/handler/http/dto"
)

// CookieConfig describes the session cookie.
type CookieConfig struct {
	Name   string
	MaxAge time.Duration
	Domain string
	Secure bool
}

// DefaultCookieName is the cookie carrying the session token.
const DefaultCookieName = "token"

func (cc CookieConfig) name() string {
	if cc.Name == "" {
		return DefaultCookieName
	}
	return cc.Name
}

// setSessionCookie writes the httpOnly session cookie.
func setSessionCookie(c *gin.Context, cc CookieConfig, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cc.name(), token, int(cc.MaxAge.Seconds()), "/", cc.Domain, cc.Secure, true)
}

// clearSessionCookie expires the session cookie immediately.
func clearSessionCookie(c *gin.Context, cc CookieConfig) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cc.name(), "", -1, "/", cc.Domain, cc.Secure, true)
}

// ErrorHandler forwards err to the error middleware and stops the chain.
func ErrorHandler(c *gin.Context, err error) {
	_ = c.Error(err)
	c.Abort()
}

// SuccessHandler centralizes success responses
func SuccessHandler(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

// MessageHandler centralizes message responses
func MessageHandler(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, dto.MessageResponse{Success: true, Message: message})
}

// BindRequest binds a JSON or form body. An empty body leaves req untouched.
func BindRequest(c *gin.Context, req interface{}) error {
	if err := c.ShouldBind(req); err != nil && !errors.Is(err, io.EOF) {
		ErrorHandler(c, apperror.Validation("Invalid request body: "+err.Error()))
		return err
	}
	return nil
}
