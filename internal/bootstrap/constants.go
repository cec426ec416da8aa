package bootstrap

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingApp         = "Starting HamsterHaven"
	LogMsgConfigurationLoaded = "Configuration loaded"
)

// Log messages for store and event wiring
const (
	LogMsgStoreOpened                = "Profile store opened"
	LogMsgMigrationsApplied          = "Database migrations applied"
	LogMsgEventSystemInitialized     = "Event system initialized"
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgRunHistoryRegistered       = "Run history recorder registered"
)

// Error messages
const (
	ErrMsgFailedOpenLogFile  = "failed to open log file"
	ErrMsgFailedMigrate      = "failed to apply migrations"
	ErrMsgFailedConnect      = "failed to connect to database"
	ErrMsgUnknownStoreDriver = "unknown store driver"
)

// Shutdown messages
const (
	LogMsgShuttingDownServer    = "Shutting down server..."
	LogMsgWaitingForRunner      = "Waiting for habitat final save..."
	LogMsgShuttingDownWorkers   = "Draining save workers..."
	LogMsgServerStopped         = "Server stopped"
	LogMsgServerForcedShutdown  = "Server forced to shutdown"
	LogMsgRunnerShutdownTimeout = "Timed out waiting for habitat final save"
)
