package infra

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	PostgresURL string
	JWTSecret   string

	RedisAddr     string
	RedisPassword string

	// QuizSessionStore is "memory" or "redis".
	QuizSessionStore string
	QuizSessionTTL   time.Duration

	ServiceFeePercent float64
	CatalogFile       string

	LogLevel string
	LogFile  string

	// Warnings collects values that were ignored while loading. The logger
	// is built from this Config, so they are reported once it exists.
	Warnings []ConfigWarning
}

type ConfigWarning struct {
	Key     string
	Value   string
	Default string
	Err     error
}

// LoadConfig reads a .env file when one exists and then the environment.
func LoadConfig() Config {
	var env envReader
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		env.warn(".env", "", "", err)
	}

	cfg := Config{
		Port:              getEnvWithDefault("PORT", "8080"),
		PostgresURL:       os.Getenv("POSTGRES_URL"),
		JWTSecret:         os.Getenv("JWT_SECRET"),
		RedisAddr:         getEnvWithDefault("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		QuizSessionStore:  getEnvWithDefault("QUIZ_SESSION_STORE", "memory"),
		QuizSessionTTL:    env.duration("QUIZ_SESSION_TTL", 30*time.Minute),
		ServiceFeePercent: env.float("SERVICE_FEE_PERCENT", 8),
		CatalogFile:       os.Getenv("CATALOG_FILE"),
		LogLevel:          getEnvWithDefault("LOG_LEVEL", "info"),
		LogFile:           os.Getenv("LOG_FILE"),
	}
	cfg.Warnings = env.warnings
	return cfg
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

type envReader struct {
	warnings []ConfigWarning
}

func (r *envReader) warn(key, value, def string, err error) {
	r.warnings = append(r.warnings, ConfigWarning{Key: key, Value: value, Default: def, Err: err})
}

func (r *envReader) float(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		r.warn(key, value, fmt.Sprint(defaultValue), err)
		return defaultValue
	}
	return f
}

func (r *envReader) duration(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err == nil && d <= 0 {
		err = errors.New("duration must be positive")
	}
	if err != nil {
		r.warn(key, value, defaultValue.String(), err)
		return defaultValue
	}
	return d
}
