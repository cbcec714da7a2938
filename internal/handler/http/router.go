package http

import (
	"net/http"
	"time"

	"github.com/didip/tollbooth/v7"
	"github.com/didip/tollbooth/v7/limiter"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/mikiasgoitom/Lectern/internal/domain/contract"
	"github.com/mikiasgoitom/Lectern/internal/domain/entity"
	"github.com/mikiasgoitom/Lectern/internal/handler/http/dto"
	"github.com/mikiasgoitom/Lectern/internal/handler/http/middleware"
	"github.com/mikiasgoitom/Lectern/internal/infrastructure/metrics"
	usecasecontract "github.com/mikiasgoitom/Lectern/internal/usecase/contract"
)

// RouterConfig carries the HTTP-level settings.
type RouterConfig struct {
	Cookie         CookieConfig
	Google         GoogleOAuthConfig
	FrontendURL    string
	RateLimitRPS   float64
	UploadMaxBytes int64
	ExposeStack    bool
}

type Router struct {
	userHandler    *UserHandler
	courseHandler  *CourseHandler
	authHandler    *AuthHandler
	userUsecase    usecasecontract.IUserUseCase
	stager         contract.IFileStager
	metrics        *metrics.Metrics
	metricsHandler http.Handler
	logger         *zap.Logger
	cfg            RouterConfig
}

// NewRouter wires the handlers. metrics and metricsHandler may be nil.
func NewRouter(
	userUsecase usecasecontract.IUserUseCase,
	courseUsecase usecasecontract.ICourseUseCase,
	stager contract.IFileStager,
	m *metrics.Metrics,
	metricsHandler http.Handler,
	logger *zap.Logger,
	cfg RouterConfig,
) *Router {
	return &Router{
		userHandler:    NewUserHandler(userUsecase, cfg.Cookie),
		courseHandler:  NewCourseHandler(courseUsecase),
		authHandler:    NewAuthHandler(userUsecase, cfg.Google, cfg.Cookie),
		userUsecase:    userUsecase,
		stager:         stager,
		metrics:        m,
		metricsHandler: metricsHandler,
		logger:         logger,
		cfg:            cfg,
	}
}

func (r *Router) SetupRoutes(router *gin.Engine) {
	router.Use(middleware.Recovery(r.logger))
	router.Use(middleware.RequestLogger(r.logger))
	if r.metrics != nil {
		router.Use(middleware.Metrics(r.metrics))
	}
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{r.cfg.FrontendURL},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	// rate limiter configuration
	if r.cfg.RateLimitRPS > 0 {
		lmt := tollbooth.NewLimiter(r.cfg.RateLimitRPS, &limiter.ExpirableOptions{DefaultExpirationTTL: time.Hour})
		lmt.SetIPLookups([]string{"RemoteAddr", "X-Forwarded-For", "X-Real-IP"})
		lmt.SetMessageContentType("application/json; charset=utf-8")
		lmt.SetMessage(`{"success":false,"message":"Too many requests, please try again later."}`)
		router.Use(middleware.RateLimiter(lmt))
	}
	router.Use(middleware.ErrorHandler(r.logger, r.cfg.ExposeStack))

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	if r.metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(r.metricsHandler))
	}
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, dto.MessageResponse{Success: false, Message: "Page Not Found"})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	requireSession := middleware.AuthMiddleWare(r.userUsecase, r.cfg.Cookie.name())
	requireAdmin := middleware.RequireRoles(entity.UserRoleAdmin)
	upload := func(field string) gin.HandlerFunc {
		return middleware.Upload(r.stager, field, r.cfg.UploadMaxBytes, r.logger)
	}

	users := v1.Group("/user")
	{
		users.POST("/register", upload("avatar"), r.userHandler.Register)
		users.POST("/login", r.userHandler.Login)
		users.POST("/logout", r.userHandler.Logout)
		users.GET("/profile", requireSession, r.userHandler.GetProfile)

		// Google OAuth endpoints
		if r.cfg.Google.Enabled() {
			users.GET("/google/login", r.authHandler.HandleGoogleLogin)
			users.GET("/google/callback", r.authHandler.HandleGoogleCallback)
		}
	}

	courses := v1.Group("/course")
	{
		courses.GET("", r.courseHandler.ListCourses)
		courses.POST("", requireSession, requireAdmin, upload("thumbnail"), r.courseHandler.CreateCourse)

		courses.GET("/:id", requireSession, r.courseHandler.GetLectures)
		courses.PUT("/:id", requireSession, requireAdmin, upload("thumbnail"), r.courseHandler.UpdateCourse)
		courses.DELETE("/:id", requireSession, requireAdmin, r.courseHandler.RemoveCourse)
		courses.POST("/:id", requireSession, requireAdmin, upload("lecture"), r.courseHandler.AddLecture)
		courses.DELETE("/:id/lectures/:lectureId", requireSession, requireAdmin, r.courseHandler.RemoveLecture)
	}
}
