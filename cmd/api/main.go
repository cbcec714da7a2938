package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	handlerHttp "github.com/mikiasgoitom/Lectern/internal/handler/http"
	"github.com/mikiasgoitom/Lectern/internal/infrastructure/assethost"
	redisclient "github.com/mikiasgoitom/Lectern/internal/infrastructure/cache"
	"github.com/mikiasgoitom/Lectern/internal/infrastructure/config"
	database "github.com/mikiasgoitom/Lectern/internal/infrastructure/database"
	"github.com/mikiasgoitom/Lectern/internal/infrastructure/jwt"
	"github.com/mikiasgoitom/Lectern/internal/infrastructure/logger"
	"github.com/mikiasgoitom/Lectern/internal/infrastructure/metrics"
	passwordservice "github.com/mikiasgoitom/Lectern/internal/infrastructure/password_service"
	randomgenerator "github.com/mikiasgoitom/Lectern/internal/infrastructure/random_generator"
	"github.com/mikiasgoitom/Lectern/internal/infrastructure/repository/mongodb"
	"github.com/mikiasgoitom/Lectern/internal/infrastructure/store"
	"github.com/mikiasgoitom/Lectern/internal/infrastructure/uploadstage"
	"github.com/mikiasgoitom/Lectern/internal/infrastructure/uuidgen"
	"github.com/mikiasgoitom/Lectern/internal/infrastructure/validator"
	"github.com/mikiasgoitom/Lectern/internal/usecase"
)

const shutdownTimeout = 30 * time.Second

func main() {
	// Load configuration (.env first, then environment)
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zapLogger, err := logger.New(cfg.AppEnv, cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zapLogger.Sync() }()
	appLogger := logger.NewZapLogger(zapLogger)

	// Establish MongoDB connection
	mongoClient, err := database.NewMongoDBClient(cfg.MongoURI)
	if err != nil {
		zapLogger.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		if err := mongoClient.Disconnect(); err != nil {
			zapLogger.Error("Failed to disconnect from MongoDB", zap.Error(err))
		}
	}()
	db := mongoClient.Database(cfg.MongoDBName)

	// Dependency Injection: Repositories
	userRepo := mongodb.NewMongoUserRepository(db.Collection("users"))
	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 10*time.Second)
	if err := userRepo.EnsureIndexes(indexCtx); err != nil {
		zapLogger.Fatal("Failed to ensure user indexes", zap.Error(err))
	}
	cancelIndex()
	courseRepo := mongodb.NewCourseRepository(db)

	// Metrics
	appMetrics, err := metrics.New(prometheus.DefaultRegisterer)
	if err != nil {
		zapLogger.Fatal("Failed to register metrics", zap.Error(err))
	}

	// Remote asset host
	if cfg.AssetBucket == "" {
		zapLogger.Fatal("ASSET_BUCKET environment variable not set")
	}
	gcsClient, err := assethost.NewGCSClient(context.Background(), cfg.AssetCredentialsFile)
	if err != nil {
		zapLogger.Fatal("Failed to create storage client", zap.Error(err))
	}
	defer gcsClient.Close()
	gcsStore, err := assethost.NewGCSStore(gcsClient, cfg.AssetBucket, zapLogger.Named("assets"))
	if err != nil {
		zapLogger.Fatal("Failed to create asset store", zap.Error(err))
	}
	assetStore := metrics.NewInstrumentedAssetStore(gcsStore, appMetrics)

	stager, err := uploadstage.NewDiskStager(cfg.UploadDir, cfg.UploadMaxBytes, uploadstage.DefaultFieldRules(), zapLogger.Named("uploads"))
	if err != nil {
		zapLogger.Fatal("Failed to prepare upload directory", zap.Error(err))
	}

	// Dependency Injection: Services
	hasher := passwordservice.NewHasher()
	jwtService := jwt.NewJWTService(jwt.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry))

	// Dependency Injection: Usecases
	userUsecase := usecase.NewUserUsecase(
		userRepo, assetStore, hasher, jwtService, appLogger, cfg,
		validator.NewValidator(), uuidgen.NewGenerator(), randomgenerator.NewRandomGenerator(),
	)
	courseUsecase := usecase.NewCourseUseCase(courseRepo, assetStore, appLogger, cfg, uuidgen.NewGenerator())

	// Optional Dependency Injection: Redis cache
	if cfg.RedisURL != "" {
		rdb, err := redisclient.NewRedisFromURL(context.Background(), cfg.RedisURL)
		if err != nil {
			zapLogger.Warn("Redis unavailable, course list cache disabled", zap.Error(err))
		} else {
			defer func() { _ = redisclient.Close(rdb) }()
			courseUsecase.SetCourseCache(store.NewCourseCacheStore(rdb, cfg.CourseCacheTTL))
		}
	}

	// Setup API routes
	gin.SetMode(cfg.GinMode)
	router := gin.New()
	handlerHttp.NewRouter(userUsecase, courseUsecase, stager, appMetrics, promhttp.Handler(), zapLogger, handlerHttp.RouterConfig{
		Cookie: handlerHttp.CookieConfig{
			Name:   handlerHttp.DefaultCookieName,
			MaxAge: cfg.CookieMaxAge,
			Domain: cfg.CookieDomain,
			Secure: cfg.IsProduction(),
		},
		Google: handlerHttp.GoogleOAuthConfig{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			BaseURL:      cfg.AppBaseURL,
		},
		FrontendURL:    cfg.FrontendURL,
		RateLimitRPS:   cfg.RateLimitRPS,
		UploadMaxBytes: cfg.UploadMaxBytes,
		ExposeStack:    !cfg.IsProduction(),
	}).SetupRoutes(router)

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 15 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	// Start the server
	go func() {
		zapLogger.Info("Server running", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	zapLogger.Info("Shutting down server", zap.String("signal", sig.String()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		zapLogger.Error("Server forced to shutdown", zap.Error(err))
	}
}
