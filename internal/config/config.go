package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/team-oshsharohi/roster-service/internal/platform/logging"
)

// Config stores runtime configuration for the service.
type Config struct {
	ServiceName        string
	ServiceVersion     string
	HTTPAddr           string
	DBPath             string
	AssetsDir          string
	CORSAllowedOrigins []string
	ReadTimeout        time.Duration
	WriteTimeout       time.Duration
	TracingEnabled     bool
	OTLPEndpoint       string
	LogLevel           logging.Level
}

// The public site runs on Vite in development; these origins mirror the ones
// the frontend is served from.
const defaultCORSOrigins = "http://localhost:5173,http://localhost:3000,http://127.0.0.1:5173"

func Load() (Config, error) {
	port, err := getEnvAsInt("PORT", 3001)
	if err != nil {
		return Config{}, fmt.Errorf("parse PORT: %w", err)
	}
	if port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("PORT must be between 1 and 65535")
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}

	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "15s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	tracingEnabled, err := strconv.ParseBool(getEnv("TRACING_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse TRACING_ENABLED: %w", err)
	}
	otlpEndpoint := strings.TrimSpace(getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""))
	if tracingEnabled && otlpEndpoint == "" {
		return Config{}, fmt.Errorf("OTEL_EXPORTER_OTLP_ENDPOINT is required when TRACING_ENABLED=true")
	}

	cfg := Config{
		ServiceName:        getEnv("APP_SERVICE_NAME", "roster-api"),
		ServiceVersion:     getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:           ":" + strconv.Itoa(port),
		DBPath:             getEnv("DB_PATH", "db/oshsharohi.db"),
		AssetsDir:          getEnv("ASSETS_DIR", "assets"),
		CORSAllowedOrigins: splitCSV(getEnv("CORS_ALLOWED_ORIGINS", defaultCORSOrigins)),
		ReadTimeout:        readTimeout,
		WriteTimeout:       writeTimeout,
		TracingEnabled:     tracingEnabled,
		OTLPEndpoint:       otlpEndpoint,
		LogLevel:           parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}

	if len(cfg.CORSAllowedOrigins) == 0 {
		return Config{}, fmt.Errorf("CORS_ALLOWED_ORIGINS cannot be empty")
	}
	if strings.TrimSpace(cfg.DBPath) == "" {
		return Config{}, fmt.Errorf("DB_PATH cannot be empty")
	}

	return cfg, nil
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

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
