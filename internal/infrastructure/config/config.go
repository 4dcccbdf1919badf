package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	OTLP       OTLPConfig
	Log        LogConfig
	Repository RepositoryConfig
}

type ServerConfig struct {
	Port string
	Host string
}

type OTLPConfig struct {
	Endpoint    string
	ServiceName string
	Environment string
	Enabled     bool
}

type LogConfig struct {
	Level slog.Level
}

// RepositoryConfig selects the storage backend: "memory" or "postgres"
type RepositoryConfig struct {
	Driver      string
	DatabaseURL string
}

// LoadConfig loads configuration from environment variables.
// Files listed in envFiles are read first without overriding variables already set;
// missing files are ignored.
func LoadConfig(envFiles ...string) *Config {
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	return &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnv("SERVER_PORT", "8080"),
		},
		OTLP: OTLPConfig{
			Endpoint:    getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
			ServiceName: getEnv("OTEL_SERVICE_NAME", "produtos-api"),
			Environment: getEnv("OTEL_ENVIRONMENT", "development"),
			Enabled:     getEnvBool("OTEL_ENABLED", true),
		},
		Log: LogConfig{
			Level: parseLevel(getEnv("LOG_LEVEL", "debug")),
		},
		Repository: RepositoryConfig{
			Driver:      strings.ToLower(getEnv("REPOSITORY_DRIVER", "memory")),
			DatabaseURL: getEnv("DATABASE_URL", ""),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	value, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

func parseLevel(s string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return level
}
