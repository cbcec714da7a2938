package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	usecasecontract "github.com/mikiasgoitom/Lectern/internal/usecase/contract"
)

// Config holds application configuration values.
type Config struct {
	// Server
	AppEnv     string `mapstructure:"APP_ENV"`
	Port       string `mapstructure:"PORT"`
	GinMode    string `mapstructure:"GIN_MODE"`
	AppBaseURL string `mapstructure:"APP_BASE_URL"`

	// Logging
	LogLevel  string `mapstructure:"LOG_LEVEL"`
	LogFormat string `mapstructure:"LOG_FORMAT"`

	// Storage
	MongoURI    string `mapstructure:"MONGODB_URI"`
	MongoDBName string `mapstructure:"MONGODB_DB_NAME"`
	RedisURL    string `mapstructure:"REDIS_URL"`

	// Session
	JWTSecret    string        `mapstructure:"JWT_SECRET"`
	JWTExpiry    time.Duration `mapstructure:"-"`
	CookieMaxAge time.Duration `mapstructure:"-"`
	CookieDomain string        `mapstructure:"COOKIE_DOMAIN"`
	FrontendURL  string        `mapstructure:"FRONTEND_URL"`

	// Uploads and the remote asset host
	UploadDir            string        `mapstructure:"UPLOAD_DIR"`
	UploadMaxBytes       int64         `mapstructure:"UPLOAD_MAX_BYTES"`
	AssetBucket          string        `mapstructure:"ASSET_BUCKET"`
	AssetCredentialsFile string        `mapstructure:"ASSET_CREDENTIALS_FILE"`
	AssetFolder          string        `mapstructure:"ASSET_FOLDER"`
	AssetTimeout         time.Duration `mapstructure:"-"`
	VideoChunkBytes      int           `mapstructure:"VIDEO_CHUNK_BYTES"`
	DefaultAvatarURL     string        `mapstructure:"DEFAULT_AVATAR_URL"`

	// Traffic
	RateLimitRPS   float64       `mapstructure:"RATE_LIMIT_RPS"`
	CourseCacheTTL time.Duration `mapstructure:"-"`

	// Google sign-in
	GoogleClientID     string `mapstructure:"GOOGLE_CLIENT_ID"`
	GoogleClientSecret string `mapstructure:"GOOGLE_CLIENT_SECRET"`
}

var _ usecasecontract.IConfigProvider = (*Config)(nil)

// Load reads an optional .env file and then the environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling configuration: %w", err)
	}

	cfg.JWTExpiry = time.Duration(v.GetInt("JWT_EXPIRY_HOURS")) * time.Hour
	cfg.CookieMaxAge = time.Duration(v.GetInt("COOKIE_MAX_AGE_HOURS")) * time.Hour
	cfg.AssetTimeout = time.Duration(v.GetInt("ASSET_TIMEOUT_SECONDS")) * time.Second
	cfg.CourseCacheTTL = time.Duration(v.GetInt("COURSE_CACHE_TTL_MINUTES")) * time.Minute

	if strings.TrimSpace(cfg.MongoURI) == "" {
		return nil, fmt.Errorf("MONGODB_URI environment variable not set")
	}
	if strings.TrimSpace(cfg.JWTSecret) == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable not set")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("PORT", "5000")
	v.SetDefault("GIN_MODE", "debug")
	v.SetDefault("APP_BASE_URL", "http://localhost:5000")

	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "console")

	v.SetDefault("MONGODB_URI", "")
	v.SetDefault("MONGODB_DB_NAME", "lms")
	v.SetDefault("REDIS_URL", "")

	v.SetDefault("JWT_SECRET", "")
	v.SetDefault("JWT_EXPIRY_HOURS", 24*7)
	v.SetDefault("COOKIE_MAX_AGE_HOURS", 24*7)
	v.SetDefault("COOKIE_DOMAIN", "")
	v.SetDefault("FRONTEND_URL", "http://localhost:3000")

	v.SetDefault("UPLOAD_DIR", "uploads")
	v.SetDefault("UPLOAD_MAX_BYTES", 100*1024*1024)
	v.SetDefault("ASSET_BUCKET", "")
	v.SetDefault("ASSET_CREDENTIALS_FILE", "")
	v.SetDefault("ASSET_FOLDER", "lms")
	v.SetDefault("ASSET_TIMEOUT_SECONDS", 120)
	v.SetDefault("VIDEO_CHUNK_BYTES", 50000000)
	v.SetDefault("DEFAULT_AVATAR_URL", "https://res.cloudinary.com/du9jzqlpt/image/upload/v1674647316/avatar_drzgxv.jpg")

	v.SetDefault("RATE_LIMIT_RPS", 20)
	v.SetDefault("COURSE_CACHE_TTL_MINUTES", 30)

	v.SetDefault("GOOGLE_CLIENT_ID", "")
	v.SetDefault("GOOGLE_CLIENT_SECRET", "")
}

// IsProduction reports whether the service runs with APP_ENV=production.
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}

// GetAssetFolder returns the root folder on the remote asset host.
func (c *Config) GetAssetFolder() string {
	return c.AssetFolder
}

// GetAssetTimeout returns the deadline applied to each asset host call.
func (c *Config) GetAssetTimeout() time.Duration {
	return c.AssetTimeout
}

// GetVideoChunkSize returns the chunk size used for lecture video uploads.
func (c *Config) GetVideoChunkSize() int {
	return c.VideoChunkBytes
}

// GetDefaultAvatarURL returns the placeholder avatar for new accounts.
func (c *Config) GetDefaultAvatarURL() string {
	return c.DefaultAvatarURL
}
