package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// DefaultPlayerCacheTTL bounds how long a remembered player is kept
const DefaultPlayerCacheTTL = 30 * time.Minute

// Config holds the application configuration
type Config struct {
	Port           int
	AdminAPIKey    string   // API key for admin endpoints
	TrustedProxies []string // Proxies allowed to set X-Forwarded-For

	LogLevel    string
	LogFormat   string
	Environment string
	ServiceName string
	Version     string

	// ItemsPath is the item catalog file; empty serves the embedded catalog
	ItemsPath string

	PlayerCacheSize int
	PlayerCacheTTL  time.Duration

	MaxRequestBytes int64

	// CatalogReloadInterval re-reads the catalog periodically; zero disables it
	CatalogReloadInterval time.Duration
}

// Load loads the configuration from environment variables
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := &Config{
		AdminAPIKey:     getEnv(EnvAdminAPIKey, ""),
		TrustedProxies:  getEnvAsList(EnvTrustedProxies),
		LogLevel:        getEnv(EnvLogLevel, DefaultLogLevel),
		LogFormat:       getEnv(EnvLogFormat, DefaultLogFormat),
		Environment:     getEnv(EnvEnvironment, DefaultEnvironment),
		ServiceName:     getEnv(EnvServiceName, DefaultServiceName),
		Version:         getEnv(EnvVersion, DefaultVersion),
		ItemsPath:       getEnv(EnvItemsPath, ConfigPathItems),
		PlayerCacheSize: getEnvAsInt(EnvPlayerCacheSize, DefaultPlayerCacheSize),
		PlayerCacheTTL:  getEnvAsDuration(EnvPlayerCacheTTL, DefaultPlayerCacheTTL),
		MaxRequestBytes: int64(getEnvAsInt(EnvMaxRequestBytes, DefaultMaxRequestBytes)),

		CatalogReloadInterval: getEnvAsDuration(EnvCatalogReload, 0),
	}

	port, err := strconv.Atoi(getEnv(EnvPort, DefaultPort))
	if err != nil {
		return nil, fmt.Errorf("invalid PORT value: %w", err)
	}
	cfg.Port = port

	if cfg.PlayerCacheSize <= 0 {
		return nil, fmt.Errorf("invalid PLAYER_CACHE_SIZE value: %d must be positive", cfg.PlayerCacheSize)
	}

	if cfg.CatalogReloadInterval < 0 {
		return nil, fmt.Errorf("invalid CATALOG_RELOAD_INTERVAL value: %s must not be negative", cfg.CatalogReloadInterval)
	}

	// Validate API key is set
	if cfg.AdminAPIKey == "" {
		return nil, fmt.Errorf("ADMIN_API_KEY environment variable must be set for security")
	}

	return cfg, nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

// getEnvAsInt parses an integer variable, falling back to the default when unset or invalid
func getEnvAsInt(key string, defaultValue int) int {
	value, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsDuration parses a time.Duration ("30s", "10m"), falling back to the default
func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	value, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return value
}

// getEnvAsList splits a comma separated variable, dropping empty entries
func getEnvAsList(key string) []string {
	var out []string
	for _, part := range strings.Split(os.Getenv(key), ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
