package config

// Environment variable names
const (
	EnvPort             = "PORT"
	EnvAdminAPIKey      = "ADMIN_API_KEY"
	EnvTrustedProxies   = "TRUSTED_PROXIES"
	EnvLogLevel         = "LOG_LEVEL"
	EnvLogFormat        = "LOG_FORMAT"
	EnvEnvironment      = "ENVIRONMENT"
	EnvServiceName      = "SERVICE_NAME"
	EnvVersion          = "VERSION"
	EnvItemsPath        = "ITEMS_PATH"
	EnvPlayerCacheSize  = "PLAYER_CACHE_SIZE"
	EnvPlayerCacheTTL   = "PLAYER_CACHE_TTL"
	EnvMaxRequestBytes  = "MAX_REQUEST_BYTES"
	EnvCatalogReload    = "CATALOG_RELOAD_INTERVAL"
	EnvEnvSchemaVersion = "ENV_SCHEMA_VERSION"
)

// Defaults
const (
	DefaultPort            = "8080"
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultEnvironment     = "dev"
	DefaultServiceName     = "itemforge"
	DefaultVersion         = "dev"
	DefaultPlayerCacheSize = 1000
	DefaultMaxRequestBytes = 1 << 20 // 1MB

	// ConfigPathItems is the catalog file used when ITEMS_PATH is unset.
	// An empty ITEMS_PATH serves the embedded default catalog.
	ConfigPathItems = "configs/items.json"
)

// Example values shipped in .env.example
const (
	ExampleAdminAPIKey = "generate_with_openssl_rand_hex_32"
)
