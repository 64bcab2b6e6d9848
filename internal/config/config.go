// Package config handles loading and validating configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Network selects which OpenSea deployment the client talks to.
type Network string

const (
	// NetworkProduction targets the mainnet API.
	NetworkProduction Network = "production"
	// NetworkTestnet targets the testnets API.
	NetworkTestnet Network = "testnet"
)

// Config holds all configuration values for the explorer and fetcher.
type Config struct {
	// OpenSea API credentials (optional, key enables the API-key header)
	APIKey    string
	APISecret string

	// Network selects the API base URL
	Network Network

	// Fetcher
	FetchPageSize     int
	FetchDelay        time.Duration
	AssetsFile        string
	DefaultCollection string

	// Rarity
	CollectionSupply int

	// Logging
	LogLevel string
}

// Load reads configuration from environment variables with fallback to .env file.
// Priority order: Environment variables > .env file > hardcoded defaults
func Load() (*Config, error) {
	// Attempt to load .env file (ignore error if not found)
	_ = godotenv.Load()

	cfg := &Config{
		APIKey:    getEnv("OPENSEA_API_KEY", ""),
		APISecret: getEnv("OPENSEA_API_SECRET", ""),
		Network:   Network(getEnv("OPENSEA_NETWORK", string(NetworkProduction))),

		FetchPageSize:     getEnvInt("FETCH_PAGE_SIZE", 20),
		FetchDelay:        time.Duration(getEnvInt("FETCH_DELAY_SECONDS", 1)) * time.Second,
		AssetsFile:        getEnv("ASSETS_FILE", "assets.json"),
		DefaultCollection: getEnv("DEFAULT_COLLECTION", "nft-worlds"),

		CollectionSupply: getEnvInt("COLLECTION_SUPPLY", 8888),

		LogLevel: getEnv("LOG_LEVEL", "INFO"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks that required configuration values are set and valid.
func (c *Config) Validate() error {
	if c.Network != NetworkProduction && c.Network != NetworkTestnet {
		return fmt.Errorf("OPENSEA_NETWORK must be %q or %q", NetworkProduction, NetworkTestnet)
	}

	if c.FetchPageSize < 1 {
		return fmt.Errorf("FETCH_PAGE_SIZE must be at least 1")
	}

	if c.CollectionSupply < 1 {
		return fmt.Errorf("COLLECTION_SUPPLY must be at least 1")
	}

	if c.AssetsFile == "" {
		return fmt.Errorf("ASSETS_FILE is required")
	}

	return nil
}

// MaskedAPIKey returns the API key with most characters hidden for logging.
func (c *Config) MaskedAPIKey() string {
	return maskSecret(c.APIKey)
}

// maskSecret hides all but the first and last 4 characters of a secret.
func maskSecret(s string) string {
	if len(s) <= 8 {
		if len(s) == 0 {
			return "(not set)"
		}
		return "****"
	}
	return s[:4] + "****" + s[len(s)-4:]
}

// getEnv retrieves an environment variable or returns a default value.
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvInt retrieves an environment variable as an integer or returns a default.
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
