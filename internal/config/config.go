package config

import (
	"os"
	"strconv"
)

// Config holds all configuration for the application
type Config struct {
	Redis RedisConfig
	Game  GameConfig
}

// RedisConfig holds Redis-specific configuration. An empty Addr means the
// game runs on in-memory storage only.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// GameConfig holds gameplay configuration
type GameConfig struct {
	// Seed drives the injectable random source; 0 means seed from the clock.
	Seed int64

	// TemplatePath points at an optional YAML effect-template set.
	TemplatePath string
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Redis: RedisConfig{
			Addr:     os.Getenv("REDIS_ADDR"),
			Password: os.Getenv("REDIS_PASSWORD"),
			DB:       getEnvAsIntOrDefault("REDIS_DB", 0),
		},
		Game: GameConfig{
			Seed:         int64(getEnvAsIntOrDefault("DELVE_SEED", 0)),
			TemplatePath: os.Getenv("DELVE_TEMPLATES"),
		},
	}

	return cfg, nil
}

func getEnvAsIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
