package config

import (
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Addr             string
	DataDir          string
	AssetsDir        string
	PlaceholderAsset string
	DBPath           string
	LogLevel         string
	SessionTTLMins   int
}

// Load reads configuration from a .env file (if present) and environment variables,
// applying sensible defaults when values are missing or invalid.
func Load() Config {
	// Ignore error so the app still starts when .env is absent in production.
	_ = godotenv.Load()

	return Config{
		Addr:             envOr("ADDR", ":8050"),
		DataDir:          envOr("DATA_DIR", "data/processed"),
		AssetsDir:        envOr("ASSETS_DIR", "star_graph_data"),
		PlaceholderAsset: envOr("PLACEHOLDER_ASSET", "placeholder.png"),
		DBPath:           envOr("DB_PATH", ":memory:"),
		LogLevel:         envOr("LOG_LEVEL", "INFO"),
		SessionTTLMins:   envIntOr("SESSION_TTL_MINS", 120),
	}
}

// Validate checks the configuration for values that would prevent startup.
func (c Config) Validate() error {
	if c.Addr == "" {
		return fmt.Errorf("ADDR cannot be empty")
	}
	if c.DataDir == "" {
		return fmt.Errorf("DATA_DIR cannot be empty")
	}
	if c.DBPath == "" {
		return fmt.Errorf("DB_PATH cannot be empty")
	}
	switch c.LogLevel {
	case "DEBUG", "INFO", "WARN", "ERROR":
	default:
		return fmt.Errorf("LOG_LEVEL must be DEBUG, INFO, WARN or ERROR, got %q", c.LogLevel)
	}
	if c.SessionTTLMins < 0 {
		return fmt.Errorf("SESSION_TTL_MINS cannot be negative")
	}
	return nil
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
		log.Printf("invalid value for %s=%q, using default %d", key, v, def)
	}
	return def
}
