package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the process configuration
type Config struct {
	Port             int
	GRPCPort         int
	LogLevel         string
	LogFormat        string
	Environment      string
	ConfigDir        string // base directory of the YAML game files
	Game             string
	Pool             string // default pool; empty means the game's own
	SessionCacheSize int
	SessionTTL       time.Duration
	RNGSeed          uint64 // 0 means crypto randomness
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		LogFormat:   getEnv("LOG_FORMAT", ""),
		Environment: getEnv("ENVIRONMENT", "dev"),
		ConfigDir:   getEnv("CONFIG_DIR", "configs"),
		Game:        getEnv("GAME", "relic"),
		Pool:        getEnv("POOL", ""),
	}

	var errs []error
	var err error
	if cfg.Port, err = getInt("PORT", 8080); err != nil {
		errs = append(errs, err)
	}
	if cfg.GRPCPort, err = getInt("GRPC_PORT", 9090); err != nil {
		errs = append(errs, err)
	}
	if cfg.SessionCacheSize, err = getInt("SESSION_CACHE_SIZE", 10000); err != nil {
		errs = append(errs, err)
	}
	if cfg.SessionTTL, err = time.ParseDuration(getEnv("SESSION_TTL", "24h")); err != nil {
		errs = append(errs, fmt.Errorf("invalid SESSION_TTL value: %w", err))
	}
	if cfg.RNGSeed, err = strconv.ParseUint(getEnv("RNG_SEED", "0"), 10, 64); err != nil {
		errs = append(errs, fmt.Errorf("invalid RNG_SEED value: %w", err))
	}
	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks value ranges
func (c *Config) Validate() error {
	var errs []string
	if c.Port < 1 || c.Port > 65535 {
		errs = append(errs, fmt.Sprintf("PORT %d out of range", c.Port))
	}
	if c.GRPCPort < 0 || c.GRPCPort > 65535 {
		errs = append(errs, fmt.Sprintf("GRPC_PORT %d out of range", c.GRPCPort))
	}
	if c.GRPCPort != 0 && c.GRPCPort == c.Port {
		errs = append(errs, "GRPC_PORT must differ from PORT")
	}
	if c.SessionCacheSize < 1 {
		errs = append(errs, "SESSION_CACHE_SIZE must be >= 1")
	}
	if c.SessionTTL < 0 {
		errs = append(errs, "SESSION_TTL must be >= 0")
	}
	if c.Game == "" {
		errs = append(errs, "GAME must be set")
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(errs, "; "))
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getInt(key string, defaultValue int) (int, error) {
	v, err := strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	if err != nil {
		return 0, fmt.Errorf("invalid %s value: %w", key, err)
	}
	return v, nil
}
