package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// GetEnv returns an environment variable or a default value.
func GetEnv(key, defaultVal string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultVal
}

// GetIntEnv returns an int environment variable or a default value.
func GetIntEnv(key string, defaultVal int) int {
	if val, ok := os.LookupEnv(key); ok {
		if i, err := strconv.Atoi(val); err == nil {
			return i
		}
	}
	return defaultVal
}

// GetBoolEnv returns a bool environment variable or a default value.
func GetBoolEnv(key string, defaultVal bool) bool {
	if val, ok := os.LookupEnv(key); ok {
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return defaultVal
}

// GetDurationEnv returns a duration environment variable or a default value.
func GetDurationEnv(key string, defaultVal time.Duration) time.Duration {
	if val, ok := os.LookupEnv(key); ok {
		if d, err := time.ParseDuration(val); err == nil {
			return d
		}
	}
	return defaultVal
}

// IsProduction checks if the app runs in production mode.
func IsProduction() bool {
	return GetEnv("ENV", "development") == "production"
}

// DBConfig holds the storage connection and pool settings.
type DBConfig struct {
	Client          string
	URL             string
	MaxIdleConns    int
	MaxOpenConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// RedisConfig holds the cache connection settings. An empty Host disables Redis.
type RedisConfig struct {
	Host     string
	Port     string
	Password string
	DB       int
}

// Enabled reports whether a Redis host was configured.
func (c RedisConfig) Enabled() bool {
	return c.Host != ""
}

// Config is the full runtime configuration of the server.
type Config struct {
	Port               string
	Production         bool
	RoutePrefix        string
	StrictSessionScope bool
	CORSOrigins        string
	RateLimitMax       int
	RateLimitWindow    time.Duration
	SummaryCacheTTL    time.Duration
	DB                 DBConfig
	Redis              RedisConfig
}

// Load reads the configuration from the environment, applying defaults
// for anything missing or malformed.
func Load() *Config {
	return &Config{
		Port:               GetEnv("PORT", "3333"),
		Production:         IsProduction(),
		RoutePrefix:        normalizePrefix(GetEnv("ROUTE_PREFIX", "/transactions")),
		StrictSessionScope: GetBoolEnv("STRICT_SESSION_SCOPE", false),
		CORSOrigins:        GetEnv("CORS_ORIGINS", "http://localhost:5173"),
		RateLimitMax:       GetIntEnv("RATE_LIMIT_MAX", 100),
		RateLimitWindow:    GetDurationEnv("RATE_LIMIT_WINDOW", time.Minute),
		SummaryCacheTTL:    GetDurationEnv("SUMMARY_CACHE_TTL", 30*time.Second),
		DB: DBConfig{
			Client:          strings.ToLower(GetEnv("DATABASE_CLIENT", "sqlite")),
			URL:             GetEnv("DATABASE_URL", "./db/app.db"),
			MaxIdleConns:    GetIntEnv("DB_MAX_IDLE_CONNS", 10),
			MaxOpenConns:    GetIntEnv("DB_MAX_OPEN_CONNS", 100),
			ConnMaxLifetime: GetDurationEnv("DB_CONN_MAX_LIFETIME", time.Hour),
			ConnMaxIdleTime: GetDurationEnv("DB_CONN_MAX_IDLE_TIME", 30*time.Minute),
		},
		Redis: RedisConfig{
			Host:     GetEnv("REDIS_HOST", ""),
			Port:     GetEnv("REDIS_PORT", "6379"),
			Password: GetEnv("REDIS_PASSWORD", ""),
			DB:       GetIntEnv("REDIS_DB", 0),
		},
	}
}

// normalizePrefix turns "transactions", "/transactions/" and "/" into
// "/transactions", "/transactions" and "" respectively.
func normalizePrefix(p string) string {
	p = strings.Trim(strings.TrimSpace(p), "/")
	if p == "" {
		return ""
	}
	return "/" + p
}
