package database

// Pool sizing
const (
	// DefaultMinConnections keeps a warm connection for autosaves
	DefaultMinConnections = 2
	// MaxConnections caps DBMaxConns
	MaxConnections = 32

	RuntimeParamAppName = "application_name"
	ApplicationName     = "hamsterhaven"
)

// Migration settings
const (
	MigrationDialect = "postgres"
	DriverName       = "pgx"
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
	ErrMsgFailedToOpenDatabase    = "failed to open database for migrations"
	ErrMsgFailedToSetDialect      = "failed to set migration dialect"
	ErrMsgFailedToMigrate         = "failed to apply migrations"
	ErrMsgFailedToReadVersion     = "failed to read schema version"
)

// Log Messages
const (
	LogMsgSuccessfullyConnectedToDatabase = "Successfully connected to the database"
	LogMsgMigrationsApplied               = "Database migrations applied"
)
