package config

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds application configuration loaded from environment variables or config files.
type Config struct {
	AppEnv string `mapstructure:"APP_ENV" validate:"required,oneof=development staging production test"`

	HTTPAddr        string        `mapstructure:"HTTP_ADDR" validate:"required,hostname_port"`
	ShutdownTimeout time.Duration `mapstructure:"SHUTDOWN_TIMEOUT" validate:"required"`

	LogLevel  string `mapstructure:"LOG_LEVEL" validate:"required,oneof=debug info warn error dpanic panic fatal"`
	LogFormat string `mapstructure:"LOG_FORMAT" validate:"required,oneof=json console"`

	DatabaseURL string `mapstructure:"DATABASE_URL" validate:"required,url|uri"`

	RedisAddr     string `mapstructure:"REDIS_ADDR" validate:"required,hostname_port"`
	RedisPassword string `mapstructure:"REDIS_PASSWORD"`

	AsynqConcurrency int `mapstructure:"ASYNQ_CONCURRENCY" validate:"gte=1,lte=1000"`

	JWTSecret string `mapstructure:"JWT_SECRET" validate:"required,min=16"`

	// Local object storage for project images, gallery files, and brochures.
	StorageDir     string `mapstructure:"STORAGE_DIR" validate:"required"`
	StorageBaseURL string `mapstructure:"STORAGE_BASE_URL" validate:"required,url"`

	// Public site origin, used for sitemap URLs.
	SiteURL string `mapstructure:"SITE_URL" validate:"required,url"`

	SMTPAddr string `mapstructure:"SMTP_ADDR" validate:"omitempty,hostname_port"`
	SMTPFrom string `mapstructure:"SMTP_FROM" validate:"omitempty,email"`
	// Sales inbox that receives quote and contact notifications.
	SalesEmail string `mapstructure:"SALES_EMAIL" validate:"omitempty,email"`

	// The admin list screens were tuned per entity; page sizes stay
	// independently configurable rather than sharing one constant.
	ProjectsPageSize int `mapstructure:"PROJECTS_PAGE_SIZE" validate:"gte=1,lte=100"`
	QuotesPageSize   int `mapstructure:"QUOTES_PAGE_SIZE" validate:"gte=1,lte=100"`

	GoMaxProcs int `mapstructure:"GOMAXPROCS" validate:"gte=0,lte=4096"`
}

var (
	cfg      *Config
	validate = validator.New(validator.WithRequiredStructEnabled())
)

// Load initializes configuration using Viper. It loads from .env if present,
// applies defaults, binds env vars, and validates the result.
func Load() (*Config, error) {
	// Load .env if present (non-fatal)
	_ = godotenv.Load(".env.local")
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	// Defaults
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_ADDR", "0.0.0.0:8080")
	v.SetDefault("SHUTDOWN_TIMEOUT", "15s")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")
	v.SetDefault("ASYNQ_CONCURRENCY", 10)
	v.SetDefault("STORAGE_DIR", "./data/storage")
	v.SetDefault("STORAGE_BASE_URL", "http://localhost:8080/storage")
	v.SetDefault("SITE_URL", "http://localhost:3000")
	v.SetDefault("PROJECTS_PAGE_SIZE", 6)
	v.SetDefault("QUOTES_PAGE_SIZE", 15)
	v.SetDefault("GOMAXPROCS", 0)

	// Optional config file
	_ = v.ReadInConfig()

	// Bind env without prefix for convenience
	keys := []string{
		"APP_ENV",
		"HTTP_ADDR",
		"SHUTDOWN_TIMEOUT",
		"LOG_LEVEL",
		"LOG_FORMAT",
		"DATABASE_URL",
		"REDIS_ADDR",
		"REDIS_PASSWORD",
		"ASYNQ_CONCURRENCY",
		"JWT_SECRET",
		"STORAGE_DIR",
		"STORAGE_BASE_URL",
		"SITE_URL",
		"SMTP_ADDR",
		"SMTP_FROM",
		"SALES_EMAIL",
		"PROJECTS_PAGE_SIZE",
		"QUOTES_PAGE_SIZE",
		"GOMAXPROCS",
	}
	for _, key := range keys {
		_ = v.BindEnv(key)
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("config unmarshal error: %w", err)
	}

	// Parse duration types that may come as string
	if s := v.GetString("SHUTDOWN_TIMEOUT"); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
		}
		c.ShutdownTimeout = d
	}

	if err := validate.Struct(&c); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	if c.GoMaxProcs > 0 {
		runtime.GOMAXPROCS(c.GoMaxProcs)
	}

	cfg = &c
	return cfg, nil
}

// MustLoad loads configuration or exits the process on failure.
func MustLoad() *Config {
	c, err := Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	return c
}

// Get returns the loaded configuration. Panics if not loaded.
func Get() *Config {
	if cfg == nil {
		panic("config not loaded: call config.Load or config.MustLoad first")
	}
	return cfg
}
