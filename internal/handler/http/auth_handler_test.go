package http

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"github.com/mikiasgoitom/Lectern/internal/handler/http/middleware"
	"github.com/mikiasgoitom/Lectern/internal/handler/http/mocks"
)

const (
	goodCode      = "good-code"
	providerToken = "provider-access-token"
)

// newFakeGoogle serves the token and userinfo endpoints of an OAuth provider.
func newFakeGoogle(t *testing.T, userInfoStatus int, userInfo string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/token", func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil || r.Form.Get("code") != goodCode {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusBadRequest)
			_, _ = io.WriteString(w, `{"error":"invalid_grant"}`)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"access_token":"`+providerToken+`","token_type":"Bearer","expires_in":3600}`)
	})
	mux.HandleFunc("/userinfo", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer "+providerToken {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(userInfoStatus)
		_, _ = io.WriteString(w, userInfo)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func newAuthTestEngine(t *testing.T, provider *httptest.Server) (*gin.Engine, *mocks.MockUserUsecase) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	users := mocks.NewMockUserUsecase()
	h := NewAuthHandler(users, GoogleOAuthConfig{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		BaseURL:      "http://localhost:5000",
	}, CookieConfig{Name: "token", MaxAge: time.Hour})
	h.oauth.Endpoint = oauth2.Endpoint{
		AuthURL:   provider.URL + "/auth",
		TokenURL:  provider.URL + "/token",
		AuthStyle: oauth2.AuthStyleInParams,
	}
	h.userInfoURL = provider.URL + "/userinfo"

	r := gin.New()
	r.Use(middleware.ErrorHandler(zap.NewNop(), false))
	r.GET("/google/login", h.HandleGoogleLogin)
	r.GET("/google/callback", h.HandleGoogleCallback)
	return r, users
}

func callbackRequest(state, cookieState, code string) *http.Request {
	q := url.Values{}
	if state != "" {
		q.Set("state", state)
	}
	if code != "" {
		q.Set("code", code)
	}
	req := httptest.NewRequest(http.MethodGet, "/google/callback?"+q.Encode(), nil)
	if cookieState != "" {
		req.AddCookie(&http.Cookie{Name: oauthStateCookie, Value: cookieState})
	}
	return req
}

func serve(r *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func findCookie(w *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, c := range w.Result().Cookies() {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func errorMessage(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.False(t, body.Success)
	return body.Message
}

func TestHandleGoogleLogin_SetsStateAndRedirects(t *testing.T) {
	provider := newFakeGoogle(t, http.StatusOK, `{}`)
	r, _ := newAuthTestEngine(t, provider)

	w := serve(r, httptest.NewRequest(http.MethodGet, "/google/login", nil))

	assert.Equal(t, http.StatusTemporaryRedirect, w.Code)
	stateCookie := findCookie(w, oauthStateCookie)
	require.NotNil(t, stateCookie)
	assert.True(t, stateCookie.HttpOnly)
	assert.NotEmpty(t, stateCookie.Value)

	location, err := url.Parse(w.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, provider.URL+"/auth", location.Scheme+"://"+location.Host+location.Path)
	assert.Equal(t, stateCookie.Value, location.Query().Get("state"))
	assert.Equal(t, "client-id", location.Query().Get("client_id"))
	assert.Equal(t, "http://localhost:5000"+googleCallbackPath, location.Query().Get("redirect_uri"))
}

func TestHandleGoogleCallback_RejectsStateMismatch(t *testing.T) {
	provider := newFakeGoogle(t, http.StatusOK, `{"email":"user@example.com","name":"some user","verified_email":true}`)
	r, users := newAuthTestEngine(t, provider)

	tests := []struct {
		name        string
		state       string
		cookieState string
	}{
		{"no cookie", "abc", ""},
		{"no state", "", "abc"},
		{"different state", "abc", "xyz"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := serve(r, callbackRequest(tt.state, tt.cookieState, goodCode))
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.Equal(t, "invalid CSRF state token", errorMessage(t, w))
			assert.Nil(t, findCookie(w, "token"))
		})
	}
	assert.Empty(t, users.OAuthEmail)
}

func TestHandleGoogleCallback_MissingCode(t *testing.T) {
	provider := newFakeGoogle(t, http.StatusOK, `{}`)
	r, users := newAuthTestEngine(t, provider)

	w := serve(r, callbackRequest("abc", "abc", ""))

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "authorization code not provided", errorMessage(t, w))
	assert.Empty(t, users.OAuthEmail)
}

func TestHandleGoogleCallback_FailedExchange(t *testing.T) {
	provider := newFakeGoogle(t, http.StatusOK, `{"email":"user@example.com","verified_email":true}`)
	r, users := newAuthTestEngine(t, provider)

	w := serve(r, callbackRequest("abc", "abc", "stolen-code"))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, findCookie(w, "token"))
	assert.Empty(t, users.OAuthEmail)
}

func TestHandleGoogleCallback_UserInfoFailure(t *testing.T) {
	provider := newFakeGoogle(t, http.StatusInternalServerError, `{"error":"backend"}`)
	r, users := newAuthTestEngine(t, provider)

	w := serve(r, callbackRequest("abc", "abc", goodCode))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, findCookie(w, "token"))
	assert.Empty(t, users.OAuthEmail)
}

func TestHandleGoogleCallback_RejectsUnverifiedEmail(t *testing.T) {
	provider := newFakeGoogle(t, http.StatusOK, `{"email":"admin@example.com","name":"site admin","verified_email":false}`)
	r, users := newAuthTestEngine(t, provider)

	w := serve(r, callbackRequest("abc", "abc", goodCode))

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Equal(t, "Google account email is not verified", errorMessage(t, w))
	assert.Nil(t, findCookie(w, "token"))
	assert.Empty(t, users.OAuthEmail)
}

func TestHandleGoogleCallback_Success(t *testing.T) {
	provider := newFakeGoogle(t, http.StatusOK, `{"email":"user@example.com","name":"some user","verified_email":true}`)
	r, users := newAuthTestEngine(t, provider)

	w := serve(r, callbackRequest("abc", "abc", goodCode))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user@example.com", users.OAuthEmail)
	assert.Equal(t, "some user", users.OAuthName)

	session := findCookie(w, "token")
	require.NotNil(t, session)
	assert.Equal(t, users.MockToken, session.Value)
	assert.True(t, session.HttpOnly)

	stateCookie := findCookie(w, oauthStateCookie)
	require.NotNil(t, stateCookie)
	assert.Less(t, stateCookie.MaxAge, 0)

	var body struct {
		Success bool                   `json:"success"`
		Message string                 `json:"message"`
		User    map[string]interface{} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "User logged in successfully", body.Message)
	assert.NotContains(t, body.User, "password")
}
