package config

import "time"

// Environment variable keys
const (
	EnvConfigPath      = "HAVEN_CONFIG"
	EnvPort            = "PORT"
	EnvAPIKey          = "API_KEY"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvLogDir          = "LOG_DIR"
	EnvServiceName     = "SERVICE_NAME"
	EnvVersion         = "VERSION"
	EnvEnvironment     = "ENVIRONMENT"
	EnvProfileID       = "PROFILE_ID"
	EnvStoreDriver     = "STORE_DRIVER"
	EnvSavePath        = "SAVE_PATH"
	EnvDBUser          = "DB_USER"
	EnvDBPassword      = "DB_PASSWORD"
	EnvDBHost          = "DB_HOST"
	EnvDBPort          = "DB_PORT"
	EnvDBName          = "DB_NAME"
	EnvDBMaxConns      = "DB_MAX_CONNS"
	EnvDBMaxIdleTime   = "DB_MAX_CONN_IDLE_TIME"
	EnvDBMaxLifetime   = "DB_MAX_CONN_LIFETIME"
	EnvTickInterval    = "TICK_INTERVAL"
	EnvAutosaveFrames  = "AUTOSAVE_FRAMES"
	EnvSaveWorkers     = "SAVE_WORKERS"
	EnvSaveQueueSize   = "SAVE_QUEUE_SIZE"
	EnvCacheSize       = "CACHE_SIZE"
	EnvCacheTTL        = "CACHE_TTL"
	EnvRandomSeed      = "RANDOM_SEED"
	EnvShutdownTimeout = "SHUTDOWN_TIMEOUT"
)

// Store drivers
const (
	StoreDriverFile     = "file"
	StoreDriverPostgres = "postgres"
)

// Defaults
const (
	DefaultConfigPath      = "haven.yaml"
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultLogDir          = ""
	DefaultServiceName     = "hamster-haven"
	DefaultVersion         = "dev"
	DefaultEnvironment     = "dev"
	DefaultProfileID       = "default"
	DefaultStoreDriver     = StoreDriverFile
	DefaultSavePath        = "saves"
	DefaultDBUser          = "postgres"
	DefaultDBPassword      = "postgres"
	DefaultDBHost          = "localhost"
	DefaultDBPort          = "5432"
	DefaultDBName          = "hamsterhaven"
	DefaultDBMaxConns      = 10
	DefaultDBMaxIdleTime   = 5 * time.Minute
	DefaultDBMaxLifetime   = 30 * time.Minute
	DefaultTickInterval    = time.Second / 30
	DefaultAutosaveFrames  = 900
	DefaultSaveWorkers     = 1
	DefaultSaveQueueSize   = 8
	DefaultCacheSize       = 64
	DefaultCacheTTL        = 5 * time.Minute
	DefaultShutdownTimeout = 10 * time.Second
)

// Error Messages
const (
	ErrMsgReadingConfigFile = "reading config file"
	ErrMsgParsingConfigFile = "parsing config file"
	ErrMsgInvalidConfig     = "invalid configuration"
)
