package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/ruimonteiro/playerdesk/internal/platform/logging"
	"github.com/ruimonteiro/playerdesk/internal/platform/ratelimit"
)

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv         string
	ServiceName    string
	ServiceVersion string
	HTTPAddr       string

	DatabaseURL      string
	DBPoolMinConns   int
	DBPoolMaxConns   int
	DBAcquireTimeout time.Duration

	RateLimitStorageURI string
	RateLimitDefault    []ratelimit.Limit
	RateLimitView       []ratelimit.Limit
	RateLimitFailOpen   bool

	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	LogLevel     logging.Level
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	dbPoolMinConns, err := getEnvAsInt("DB_POOL_MIN_CONNS", 4)
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_POOL_MIN_CONNS: %w", err)
	}
	if dbPoolMinConns < 0 {
		return Config{}, fmt.Errorf("DB_POOL_MIN_CONNS must be >= 0")
	}

	dbPoolMaxConns, err := getEnvAsInt("DB_POOL_MAX_CONNS", 10)
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_POOL_MAX_CONNS: %w", err)
	}
	if dbPoolMaxConns < 1 {
		return Config{}, fmt.Errorf("DB_POOL_MAX_CONNS must be >= 1")
	}
	if dbPoolMinConns > dbPoolMaxConns {
		return Config{}, fmt.Errorf("DB_POOL_MIN_CONNS cannot exceed DB_POOL_MAX_CONNS")
	}

	dbAcquireTimeout, err := time.ParseDuration(getEnv("DB_ACQUIRE_TIMEOUT", "5s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse DB_ACQUIRE_TIMEOUT: %w", err)
	}
	if dbAcquireTimeout <= 0 {
		return Config{}, fmt.Errorf("DB_ACQUIRE_TIMEOUT must be > 0")
	}

	rateLimitStorageURI := strings.TrimSpace(getEnv("RATELIMIT_STORAGE_URI", "memory://"))

	rateLimitDefault, err := ratelimit.ParsePolicy(getEnv("RATELIMIT_DEFAULT", "200/day,50/hour"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RATELIMIT_DEFAULT: %w", err)
	}

	rateLimitView, err := ratelimit.ParsePolicy(getEnv("RATELIMIT_VIEW", "1/second"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RATELIMIT_VIEW: %w", err)
	}

	rateLimitFailOpen, err := strconv.ParseBool(getEnv("RATELIMIT_FAIL_OPEN", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse RATELIMIT_FAIL_OPEN: %w", err)
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	return Config{
		AppEnv:              appEnv,
		ServiceName:         getEnv("APP_SERVICE_NAME", "playerdesk"),
		ServiceVersion:      getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:            getEnv("APP_HTTP_ADDR", ":8080"),
		DatabaseURL:         getEnv("DATABASE_URL", "postgres://db:db@postgres:5432/db?sslmode=disable"),
		DBPoolMinConns:      dbPoolMinConns,
		DBPoolMaxConns:      dbPoolMaxConns,
		DBAcquireTimeout:    dbAcquireTimeout,
		RateLimitStorageURI: rateLimitStorageURI,
		RateLimitDefault:    rateLimitDefault,
		RateLimitView:       rateLimitView,
		RateLimitFailOpen:   rateLimitFailOpen,
		ReadTimeout:         readTimeout,
		WriteTimeout:        writeTimeout,
		LogLevel:            parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}
