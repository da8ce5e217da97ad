package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	// Server
	Port int
	Env  string

	// CORS
	AllowedOrigins []string

	// Database
	DatabaseURL  string
	PoolMinConns int
	PoolMaxConns int
}

// Load loads configuration from environment variables.
// It returns an error if critical configuration is missing.
func Load() (*Config, error) {
	// Best-effort local overrides; a missing .env file is not an error.
	_ = godotenv.Load()

	cfg := &Config{
		Port: getEnvInt("PORT", 5000),
		Env:  getEnv("ENV", "development"),

		PoolMinConns: getEnvInt("POOL_MIN_CONNS", 2),
		PoolMaxConns: getEnvInt("POOL_MAX_CONNS", 10),
	}

	// CORS
	origins := getEnv("ALLOWED_ORIGINS", "http://localhost:5173")
	rawOrigins := strings.Split(origins, ",")
	for _, o := range rawOrigins {
		if trimmed := strings.TrimSpace(o); trimmed != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, trimmed)
		}
	}

	// Critical configuration - fail if missing
	var err error
	if cfg.DatabaseURL, err = getEnvRequired("DATABASE_URL"); err != nil {
		return nil, err
	}

	if cfg.PoolMinConns < 0 || cfg.PoolMaxConns < 1 || cfg.PoolMinConns > cfg.PoolMaxConns {
		return nil, fmt.Errorf("invalid pool bounds: min=%d max=%d", cfg.PoolMinConns, cfg.PoolMaxConns)
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvRequired(key string) (string, error) {
	if value := os.Getenv(key); value != "" {
		return value, nil
	}
	return "", fmt.Errorf("missing required environment variable: %s", key)
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}
