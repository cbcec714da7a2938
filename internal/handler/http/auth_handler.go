package http

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/mikiasgoitom/Lectern/internal/apperror"
	"github.com/mikiasgoitom/Lectern/internal/handler/http/dto"
	usecasecontract "github.com/mikiasgoitom/Lectern/internal/usecase/contract"
)

const (
	oauthStateCookie   = "oauthState"
	googleUserInfoURL  = "https://www.googleapis.com/oauth2/v2/userinfo"
	googleCallbackPath = "/api/v1/user/google/callback"
)

// GoogleOAuthConfig holds the Google client credentials.
type GoogleOAuthConfig struct {
	ClientID     string
	ClientSecret string
	BaseURL      string
}

// Enabled reports whether Google sign-in is configured.
func (g GoogleOAuthConfig) Enabled() bool {
	return g.ClientID != "" && g.ClientSecret != ""
}

type AuthHandler struct {
	UserUseCase usecasecontract.IUserUseCase
	oauth       *oauth2.Config
	cookie      CookieConfig
	userInfoURL string
}

func NewAuthHandler(uc usecasecontract.IUserUseCase, google GoogleOAuthConfig, cookie CookieConfig) *AuthHandler {
	return &AuthHandler{
		UserUseCase: uc,
		oauth:       googleOauthConfig(google),
		cookie:      cookie,
		userInfoURL: googleUserInfoURL,
	}
}

func googleOauthConfig(cfg GoogleOAuthConfig) *oauth2.Config {
	return &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		RedirectURL:  cfg.BaseURL + googleCallbackPath,
		Scopes:       []string{"email", "profile"},
		Endpoint:     google.Endpoint,
	}
}

func (h *AuthHandler) HandleGoogleLogin(ctx *gin.Context) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		ErrorHandler(ctx, apperror.Internal(err))
		return
	}
	state := base64.URLEncoding.EncodeToString(b)
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(oauthStateCookie, state, 300, "/", h.cookie.Domain, h.cookie.Secure, true)

	ctx.Redirect(http.StatusTemporaryRedirect, h.oauth.AuthCodeURL(state))
}

func (h *AuthHandler) HandleGoogleCallback(ctx *gin.Context) {
	state := ctx.Query("state")
	cookieState, err := ctx.Cookie(oauthStateCookie)
	if err != nil || state == "" || state != cookieState {
		ErrorHandler(ctx, apperror.Unauthorized("invalid CSRF state token"))
		return
	}
	ctx.SetCookie(oauthStateCookie, "", -1, "/", h.cookie.Domain, h.cookie.Secure, true)

	code := ctx.Query("code")
	if code == "" {
		ErrorHandler(ctx, apperror.Validation("authorization code not provided"))
		return
	}

	requestCtx := ctx.Request.Context()
	token, err := h.oauth.Exchange(requestCtx, code)
	if err != nil {
		ErrorHandler(ctx, apperror.Unauthorized(fmt.Sprintf("failed to exchange authorization code: %v", err)))
		return
	}

	resp, err := h.oauth.Client(requestCtx, token).Get(h.userInfoURL)
	if err != nil {
		ErrorHandler(ctx, apperror.Internal(fmt.Errorf("failed to get user info: %w", err)))
		return
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		ErrorHandler(ctx, apperror.Unauthorized(fmt.Sprintf("user info request failed with status %d", resp.StatusCode)))
		return
	}

	var info dto.GoogleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		ErrorHandler(ctx, apperror.Internal(fmt.Errorf("failed to decode user info: %w", err)))
		return
	}
	// Only a provider-verified address may claim an account by email.
	if !info.VerifiedEmail {
		ErrorHandler(ctx, apperror.Unauthorized("Google account email is not verified"))
		return
	}

	user, sessionToken, err := h.UserUseCase.LoginWithOAuth(requestCtx, info.Name, info.Email)
	if err != nil {
		ErrorHandler(ctx, err)
		return
	}

	setSessionCookie(ctx, h.cookie, sessionToken)
	SuccessHandler(ctx, http.StatusOK, dto.UserEnvelope{
		Success: true,
		Message: "User logged in successfully",
		User:    dto.ToUserResponse(*user),
	})
}
