package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all application configuration
//
//nolint:govet // Field alignment optimization would reduce readability
type Config struct {
	Server        ServerConfig
	Database      DatabaseConfig
	Storage       StorageConfig
	Admin         AdminConfig
	Session       SessionConfig
	Redis         RedisConfig
	Recaptcha     RecaptchaConfig
	EventTriggers EventTriggersConfig
	RateLimit     RateLimitConfig
	Logging       LoggingConfig
	Observability ObservabilityConfig
	Profiling     ProfilingConfig
	Cache         CacheConfig
}

type ServerConfig struct {
	Port           string
	GinMode        string
	AppEnv         string
	BaseURL        string
	AllowedOrigins []string
	MaxBodyBytes   int64
}

type DatabaseConfig struct {
	URL            string
	MaxConns       int32
	MinConns       int32
	CACertPath     string
	MigrationsPath string
	AutoMigrate    bool
}

// StorageConfig selects the image store. S3 is used when an access key is set,
// local disk under LocalDir otherwise.
type StorageConfig struct {
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Endpoint        string
	Region          string
	PublicBaseURL   string
	LocalDir        string
	MaxImageBytes   int64
}

// UsesS3 reports whether S3-compatible object storage is configured
func (s StorageConfig) UsesS3() bool {
	return s.AccessKeyID != ""
}

type AdminConfig struct {
	Email        string
	PasswordHash string
	Name         string
}

type SessionConfig struct {
	JWTSecret       string
	JWTIssuer       string
	SessionTTLHours int
}

type RedisConfig struct {
	URL string
}

type RecaptchaConfig struct {
	SecretKey string
	VerifyURL string
}

type EventTriggersConfig struct {
	ContactCreatedTriggerURL string
}

type RateLimitConfig struct {
	GeneralRPS   float64
	GeneralBurst int
	ContactRPS   float64
	ContactBurst int
	LoginRPS     float64
	LoginBurst   int
}

type LoggingConfig struct {
	Level string
	Dir   string
}

type ObservabilityConfig struct {
	ExporterEndpoint  string
	ServiceName       string
	ServiceNamespace  string
	ServiceVersion    string
	ServiceInstanceID string
}

type ProfilingConfig struct {
	Enabled               bool
	Endpoint              string
	AppName               string
	SampleTypes           string
	UploadIntervalSeconds int
}

type CacheConfig struct {
	ContentTTLSeconds   int  // Public listing cache TTL in seconds
	DisableContentCache bool // Read listings from the database on every request
}

// Load reads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("PORT", "8080")
	v.SetDefault("GIN_MODE", "release")
	v.SetDefault("APP_ENV", "production")
	v.SetDefault("BASE_URL", "http://localhost:8080")
	v.SetDefault("ALLOWED_CORS_ORIGINS", "http://localhost:3000")
	v.SetDefault("MAX_BODY_BYTES", 4*1024*1024)
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("MIGRATIONS_PATH", "file://./migrations")
	v.SetDefault("AUTO_MIGRATE", true)
	v.SetDefault("STORAGE_REGION", "us-east-1")
	v.SetDefault("STORAGE_LOCAL_DIR", "./storage/uploads")
	v.SetDefault("MAX_IMAGE_BYTES", 2*1024*1024)
	v.SetDefault("ADMIN_NAME", "Admin")
	v.SetDefault("JWT_ISSUER", "portfolio-api")
	v.SetDefault("RECAPTCHA_VERIFY_URL", "https://www.google.com/recaptcha/api/siteverify")
	v.SetDefault("SESSION_TTL_HOURS", 24)
	v.SetDefault("RATE_LIMIT_GENERAL_RPS", 100)
	v.SetDefault("RATE_LIMIT_GENERAL_BURST", 200)
	v.SetDefault("RATE_LIMIT_CONTACT_RPS", 0.1) // one message per 10 seconds
	v.SetDefault("RATE_LIMIT_CONTACT_BURST", 3)
	v.SetDefault("RATE_LIMIT_LOGIN_RPS", 0.2)
	v.SetDefault("RATE_LIMIT_LOGIN_BURST", 5)
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_DIR", "")
	v.SetDefault("O11Y_EXPORTER_ENDPOINT", "")
	v.SetDefault("O11Y_SERVICE_NAME", "portfolio-api")
	v.SetDefault("O11Y_SERVICE_NAMESPACE", "portfolio")
	v.SetDefault("O11Y_SERVICE_VERSION", "1.0.0")
	v.SetDefault("O11Y_PROFILING_ENABLED", false)
	v.SetDefault("O11Y_PROFILING_APP_NAME", "portfolio-api")
	v.SetDefault("O11Y_PROFILING_SAMPLE_TYPES", "cpu,alloc_space,alloc_objects,goroutines,mutex,block")
	v.SetDefault("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS", 15)
	v.SetDefault("CONTENT_CACHE_TTL", 300) // 5 minutes in seconds
	v.SetDefault("DISABLE_CONTENT_CACHE", false)

	// Automatically read environment variables
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Read from .env file if it exists
	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("..")
	_ = v.ReadInConfig() //nolint:errcheck // Ignore error if .env file doesn't exist

	cfg := &Config{
		Server: ServerConfig{
			Port:           v.GetString("PORT"),
			GinMode:        v.GetString("GIN_MODE"),
			AppEnv:         v.GetString("APP_ENV"),
			BaseURL:        strings.TrimRight(v.GetString("BASE_URL"), "/"),
			AllowedOrigins: splitList(v.GetString("ALLOWED_CORS_ORIGINS")),
			MaxBodyBytes:   v.GetInt64("MAX_BODY_BYTES"),
		},
		Database: DatabaseConfig{
			URL:            v.GetString("DATABASE_URL"),
			MaxConns:       v.GetInt32("DB_MAX_CONNS"),
			MinConns:       v.GetInt32("DB_MIN_CONNS"),
			CACertPath:     v.GetString("DATABASE_CA_CERT"),
			MigrationsPath: v.GetString("MIGRATIONS_PATH"),
			AutoMigrate:    v.GetBool("AUTO_MIGRATE"),
		},
		Storage: StorageConfig{
			AccessKeyID:     v.GetString("STORAGE_ACCESS_KEY_ID"),
			SecretAccessKey: v.GetString("STORAGE_SECRET_ACCESS_KEY"),
			BucketName:      v.GetString("STORAGE_BUCKET_NAME"),
			Endpoint:        v.GetString("STORAGE_ENDPOINT"),
			Region:          v.GetString("STORAGE_REGION"),
			PublicBaseURL:   strings.TrimRight(v.GetString("STORAGE_PUBLIC_BASE_URL"), "/"),
			LocalDir:        v.GetString("STORAGE_LOCAL_DIR"),
			MaxImageBytes:   v.GetInt64("MAX_IMAGE_BYTES"),
		},
		Admin: AdminConfig{
			Email:        strings.TrimSpace(v.GetString("ADMIN_EMAIL")),
			PasswordHash: v.GetString("ADMIN_PASSWORD_HASH"),
			Name:         v.GetString("ADMIN_NAME"),
		},
		Session: SessionConfig{
			JWTSecret:       v.GetString("JWT_SECRET"),
			JWTIssuer:       v.GetString("JWT_ISSUER"),
			SessionTTLHours: v.GetInt("SESSION_TTL_HOURS"),
		},
		Redis: RedisConfig{
			URL: v.GetString("REDIS_URL"),
		},
		Recaptcha: RecaptchaConfig{
			SecretKey: v.GetString("RECAPTCHA_SECRET_KEY"),
			VerifyURL: v.GetString("RECAPTCHA_VERIFY_URL"),
		},
		EventTriggers: EventTriggersConfig{
			ContactCreatedTriggerURL: v.GetString("CONTACT_CREATED_TRIGGER_URL"),
		},
		RateLimit: RateLimitConfig{
			GeneralRPS:   v.GetFloat64("RATE_LIMIT_GENERAL_RPS"),
			GeneralBurst: v.GetInt("RATE_LIMIT_GENERAL_BURST"),
			ContactRPS:   v.GetFloat64("RATE_LIMIT_CONTACT_RPS"),
			ContactBurst: v.GetInt("RATE_LIMIT_CONTACT_BURST"),
			LoginRPS:     v.GetFloat64("RATE_LIMIT_LOGIN_RPS"),
			LoginBurst:   v.GetInt("RATE_LIMIT_LOGIN_BURST"),
		},
		Logging: LoggingConfig{
			Level: v.GetString("LOG_LEVEL"),
			Dir:   v.GetString("LOG_DIR"),
		},
		Observability: ObservabilityConfig{
			ExporterEndpoint:  v.GetString("O11Y_EXPORTER_ENDPOINT"),
			ServiceName:       v.GetString("O11Y_SERVICE_NAME"),
			ServiceNamespace:  v.GetString("O11Y_SERVICE_NAMESPACE"),
			ServiceVersion:    v.GetString("O11Y_SERVICE_VERSION"),
			ServiceInstanceID: v.GetString("SERVICE_INSTANCE_ID"),
		},
		Profiling: ProfilingConfig{
			Enabled:               v.GetBool("O11Y_PROFILING_ENABLED"),
			Endpoint:              v.GetString("O11Y_PROFILING_ENDPOINT"),
			AppName:               v.GetString("O11Y_PROFILING_APP_NAME"),
			SampleTypes:           v.GetString("O11Y_PROFILING_SAMPLE_TYPES"),
			UploadIntervalSeconds: v.GetInt("O11Y_PROFILING_UPLOAD_INTERVAL_SECONDS"),
		},
		Cache: CacheConfig{
			ContentTTLSeconds:   v.GetInt("CONTENT_CACHE_TTL"),
			DisableContentCache: v.GetBool("DISABLE_CONTENT_CACHE"),
		},
	}

	// Validate required fields
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func splitList(value string) []string {
	items := []string{}
	for _, item := range strings.Split(value, ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Validate checks if required configuration values are set
func (c *Config) Validate() error {
	if c.Database.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}

	if c.Session.JWTSecret == "" {
		return fmt.Errorf("JWT_SECRET is required")
	}
	if c.Session.SessionTTLHours <= 0 {
		return fmt.Errorf("SESSION_TTL_HOURS must be positive")
	}

	if c.Admin.Email == "" {
		return fmt.Errorf("ADMIN_EMAIL is required")
	}
	if c.Admin.PasswordHash == "" {
		return fmt.Errorf("ADMIN_PASSWORD_HASH is required")
	}

	if c.Storage.UsesS3() {
		if c.Storage.SecretAccessKey == "" {
			return fmt.Errorf("STORAGE_SECRET_ACCESS_KEY is required when STORAGE_ACCESS_KEY_ID is set")
		}
		if c.Storage.BucketName == "" {
			return fmt.Errorf("STORAGE_BUCKET_NAME is required when STORAGE_ACCESS_KEY_ID is set")
		}
	} else if c.Storage.LocalDir == "" {
		return fmt.Errorf("STORAGE_LOCAL_DIR is required when S3 storage is not configured")
	}

	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}
	if len(c.Server.AllowedOrigins) == 0 {
		return fmt.Errorf("ALLOWED_CORS_ORIGINS is required")
	}

	if c.Profiling.Enabled && c.Profiling.Endpoint == "" {
		return fmt.Errorf("O11Y_PROFILING_ENDPOINT is required when profiling is enabled")
	}

	return nil
}

// IsDevelopment returns true if running in development mode
func (c *Config) IsDevelopment() bool {
	return c.Server.AppEnv == "development" || c.Server.GinMode == "debug"
}

// IsProduction returns true if running in production mode
func (c *Config) IsProduction() bool {
	return c.Server.AppEnv == "production"
}
