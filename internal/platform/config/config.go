package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr               string
	DatabaseURL        string
	Environment        string
	JWTSecret          string
	AdminPasswordHash  string
	TokenTTL           time.Duration
	SheetsAPIURL       string
	SheetsTimeout      time.Duration
	SyncInterval       time.Duration
	RunMigrations      bool
	MigrationsDir      string
	MaxBodyBytes       int64
	RateLimitPerMinute int
	MetricsEnabled     bool
}

func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:               getEnv("APP_ADDR", ":8080"),
		DatabaseURL:        getEnv("DATABASE_URL", ""),
		Environment:        getEnv("APP_ENV", "development"),
		JWTSecret:          getEnv("JWT_SECRET", ""),
		AdminPasswordHash:  getEnv("ADMIN_PASSWORD_HASH", ""),
		TokenTTL:           getEnvDuration("TOKEN_TTL", 12*time.Hour),
		SheetsAPIURL:       getEnv("SHEETS_API_URL", ""),
		SheetsTimeout:      getEnvDuration("SHEETS_TIMEOUT", 15*time.Second),
		SyncInterval:       getEnvDuration("SYNC_INTERVAL", 0),
		RunMigrations:      getEnvBool("RUN_MIGRATIONS", true),
		MigrationsDir:      getEnv("MIGRATIONS_DIR", "migrations"),
		MaxBodyBytes:       int64(getEnvInt("MAX_BODY_BYTES", 1048576)),
		RateLimitPerMinute: getEnvInt("RATE_LIMIT_PER_MINUTE", 120),
		MetricsEnabled:     getEnvBool("METRICS_ENABLED", true),
	}
}

// AuthEnabled reports whether the API requires a bearer token for mutations.
// Both the password hash and the signing secret must be configured.
func (c Config) AuthEnabled() bool {
	return strings.TrimSpace(c.AdminPasswordHash) != "" && strings.TrimSpace(c.JWTSecret) != ""
}

func (c Config) Validate() error {
	if strings.TrimSpace(c.DatabaseURL) == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if c.Environment == "production" && !c.AuthEnabled() {
		return fmt.Errorf("ADMIN_PASSWORD_HASH and JWT_SECRET must be set in production")
	}
	if c.AdminPasswordHash != "" && strings.TrimSpace(c.JWTSecret) == "" {
		return fmt.Errorf("JWT_SECRET must be set when ADMIN_PASSWORD_HASH is configured")
	}
	if c.MaxBodyBytes < 1024 {
		return fmt.Errorf("MAX_BODY_BYTES must be at least 1024")
	}
	if c.RateLimitPerMinute <= 0 {
		return fmt.Errorf("RATE_LIMIT_PER_MINUTE must be positive")
	}
	if c.SyncInterval > 0 && c.SheetsAPIURL == "" {
		return fmt.Errorf("SHEETS_API_URL must be set when SYNC_INTERVAL is enabled")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}
