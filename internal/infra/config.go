package infra

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config represents application configuration loaded from environment variables.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	RedisURL    string

	UsageAPIBaseURL      string
	UsageAPIKey          string
	GenerationAPIBaseURL string
	GenerationAPIKey     string

	StorageBaseURL   string
	StorageBucket    string
	StorageAPIKey    string
	StorageLocalPath string
	StoragePublicURL string

	GeoIPDBPath    string
	AllowedOrigins []string

	HTTPReadTimeout  time.Duration
	HTTPWriteTimeout time.Duration
	HTTPIdleTimeout  time.Duration
	RateLimitPerMin  int
}

// LoadConfig loads configuration from environment variables and applies defaults where needed.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8080"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		RedisURL:    os.Getenv("REDIS_URL"),

		UsageAPIBaseURL:      os.Getenv("USAGE_API_BASE_URL"),
		UsageAPIKey:          os.Getenv("USAGE_API_KEY"),
		GenerationAPIBaseURL: os.Getenv("GENERATION_API_BASE_URL"),
		GenerationAPIKey:     os.Getenv("GENERATION_API_KEY"),

		StorageBaseURL:   os.Getenv("STORAGE_BASE_URL"),
		StorageBucket:    getEnv("STORAGE_BUCKET", "room-images"),
		StorageAPIKey:    os.Getenv("STORAGE_API_KEY"),
		StorageLocalPath: getEnv("STORAGE_LOCAL_PATH", "./data/uploads"),
		StoragePublicURL: getEnv("STORAGE_PUBLIC_URL", "http://localhost:8080/static"),

		GeoIPDBPath:    os.Getenv("GEOIP_DB_PATH"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),

		HTTPReadTimeout:  time.Second * time.Duration(getEnvInt("HTTP_READ_TIMEOUT_SECONDS", 15)),
		HTTPWriteTimeout: time.Second * time.Duration(getEnvInt("HTTP_WRITE_TIMEOUT_SECONDS", 150)),
		HTTPIdleTimeout:  time.Second * time.Duration(getEnvInt("HTTP_IDLE_TIMEOUT_SECONDS", 60)),
		RateLimitPerMin:  getEnvInt("RATE_LIMIT_PER_MINUTE", 30),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.UsageAPIBaseURL == "" {
		return nil, fmt.Errorf("USAGE_API_BASE_URL is required")
	}
	if cfg.GenerationAPIBaseURL == "" {
		return nil, fmt.Errorf("GENERATION_API_BASE_URL is required")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func splitList(raw string) []string {
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
