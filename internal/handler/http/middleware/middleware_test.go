package middleware

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/mikiasgoitom/Lectern/internal/apperror"
	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
	"github.com/mikiasgoitom/Lectern/internal/infrastructure/metrics"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	os.Exit(m.Run())
}

func serve(r *gin.Engine, method, path string) (*httptest.ResponseRecorder, map[string]interface{}) {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, path, nil))
	var body map[string]interface{}
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestErrorHandler_UnknownErrorIs500(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(zap.NewNop(), false))
	r.GET("/boom", func(c *gin.Context) { _ = c.Error(errors.New("database unreachable")) })

	w, body := serve(r, http.MethodGet, "/boom")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "database unreachable", body["message"])
	assert.NotContains(t, body, "stack")
}

func TestErrorHandler_UsesAppErrorStatus(t *testing.T) {
	r := gin.New()
	r.Use(ErrorHandler(zap.NewNop(), true))
	r.GET("/missing", func(c *gin.Context) { _ = c.Error(apperror.NotFound("Lecture not found.")) })

	w, body := serve(r, http.MethodGet, "/missing")

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Lecture not found.", body["message"])
	assert.NotEmpty(t, body["stack"])
}

func TestRequireRoles(t *testing.T) {
	setClaims := func(role entity.UserRole) gin.HandlerFunc {
		return func(c *gin.Context) {
			c.Set(ClaimsKey, &entity.Claims{UserID: "u1", Role: role})
		}
	}
	ok := func(c *gin.Context) { c.String(http.StatusOK, "ok") }

	r := gin.New()
	r.Use(ErrorHandler(zap.NewNop(), false))
	r.GET("/admin", setClaims(entity.UserRoleAdmin), RequireRoles(entity.UserRoleAdmin), ok)
	r.GET("/user", setClaims(entity.UserRoleUser), RequireRoles(entity.UserRoleAdmin), ok)
	r.GET("/anon", RequireRoles(entity.UserRoleAdmin), ok)

	w, _ := serve(r, http.MethodGet, "/admin")
	assert.Equal(t, http.StatusOK, w.Code)

	w, body := serve(r, http.MethodGet, "/user")
	assert.Equal(t, http.StatusForbidden, w.Code)
	assert.Equal(t, "You do not have permission to view this route", body["message"])

	w, _ = serve(r, http.MethodGet, "/anon")
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRecovery(t *testing.T) {
	r := gin.New()
	r.Use(Recovery(zap.NewNop()))
	r.GET("/panic", func(c *gin.Context) { panic("unexpected") })

	w, body := serve(r, http.MethodGet, "/panic")

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "Internal Server Error", body["message"])
}

func TestRequestLogger_PropagatesRequestID(t *testing.T) {
	r := gin.New()
	r.Use(RequestLogger(zap.NewNop()))
	r.GET("/id", func(c *gin.Context) { c.String(http.StatusOK, c.GetString(RequestIDContextKey)) })

	req := httptest.NewRequest(http.MethodGet, "/id", nil)
	req.Header.Set(RequestIDHeader, "req-123")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, "req-123", w.Body.String())
	assert.Equal(t, "req-123", w.Header().Get(RequestIDHeader))
}

func TestMetrics_CountsByRoute(t *testing.T) {
	m, err := metrics.New(prometheus.NewRegistry())
	require.NoError(t, err)

	r := gin.New()
	r.Use(Metrics(m))
	r.GET("/course/:id", func(c *gin.Context) { c.Status(http.StatusOK) })

	serve(r, http.MethodGet, "/course/abc")
	serve(r, http.MethodGet, "/course/def")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "/course/:id", "200")))
}
