package bootstrap

// Log messages for startup
const (
	LogMsgStarting            = "Starting itemforge"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgServicesInitialized = "Services initialized"
	LogMsgEnvWarning          = "Environment warning"
	LogMsgReloadScheduled     = "Catalog reload scheduled"
)

// A single worker keeps reloads sequential; a full queue skips a tick
const (
	ReloadWorkers   = 1
	ReloadQueueSize = 1
)

// Error messages for startup
const (
	ErrMsgFailedLoadCatalog = "failed to load item catalog"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"
	LogMsgPlayerCacheCleared   = "Player cache cleared"
	LogMsgWorkersStopped       = "Background workers stopped"
)
