package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds the application configuration
type Config struct {
	Port        int    `yaml:"port" validate:"min=1,max=65535"`
	APIKey      string `yaml:"api_key"` // empty disables API key auth
	LogLevel    string `yaml:"log_level" validate:"oneof=debug info warn warning error"`
	LogFormat   string `yaml:"log_format" validate:"oneof=json text"`
	LogDir      string `yaml:"log_dir"`
	ServiceName string `yaml:"service_name" validate:"required"`
	Version     string `yaml:"version" validate:"required"`
	Environment string `yaml:"environment" validate:"required"`

	ProfileID   string `yaml:"profile_id" validate:"required,max=64,excludesall=/\\"`
	StoreDriver string `yaml:"store_driver" validate:"oneof=file postgres"`
	SavePath    string `yaml:"save_path" validate:"required_if=StoreDriver file"`

	DBUser        string        `yaml:"db_user"`
	DBPassword    string        `yaml:"db_password"`
	DBHost        string        `yaml:"db_host" validate:"required_if=StoreDriver postgres"`
	DBPort        string        `yaml:"db_port" validate:"required_if=StoreDriver postgres"`
	DBName        string        `yaml:"db_name" validate:"required_if=StoreDriver postgres"`
	DBMaxConns    int           `yaml:"db_max_conns" validate:"min=1"`
	DBMaxIdleTime time.Duration `yaml:"db_max_conn_idle_time"`
	DBMaxLifetime time.Duration `yaml:"db_max_conn_lifetime"`

	TickInterval    time.Duration `yaml:"tick_interval" validate:"min=1ms"`
	AutosaveFrames  int           `yaml:"autosave_frames" validate:"min=0"`
	SaveWorkers     int           `yaml:"save_workers" validate:"min=1"`
	SaveQueueSize   int           `yaml:"save_queue_size" validate:"min=1"`
	CacheSize       int           `yaml:"cache_size" validate:"min=1"`
	CacheTTL        time.Duration `yaml:"cache_ttl" validate:"min=1s"`
	RandomSeed      uint64        `yaml:"random_seed"` // 0 seeds randomly
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout" validate:"min=1s"`
}

func defaults() *Config {
	return &Config{
		Port:            DefaultPort,
		LogLevel:        DefaultLogLevel,
		LogFormat:       DefaultLogFormat,
		LogDir:          DefaultLogDir,
		ServiceName:     DefaultServiceName,
		Version:         DefaultVersion,
		Environment:     DefaultEnvironment,
		ProfileID:       DefaultProfileID,
		StoreDriver:     DefaultStoreDriver,
		SavePath:        DefaultSavePath,
		DBUser:          DefaultDBUser,
		DBPassword:      DefaultDBPassword,
		DBHost:          DefaultDBHost,
		DBPort:          DefaultDBPort,
		DBName:          DefaultDBName,
		DBMaxConns:      DefaultDBMaxConns,
		DBMaxIdleTime:   DefaultDBMaxIdleTime,
		DBMaxLifetime:   DefaultDBMaxLifetime,
		TickInterval:    DefaultTickInterval,
		AutosaveFrames:  DefaultAutosaveFrames,
		SaveWorkers:     DefaultSaveWorkers,
		SaveQueueSize:   DefaultSaveQueueSize,
		CacheSize:       DefaultCacheSize,
		CacheTTL:        DefaultCacheTTL,
		ShutdownTimeout: DefaultShutdownTimeout,
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// environment variables, in increasing priority.
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := defaults()
	if err := cfg.loadFile(getEnv(EnvConfigPath, DefaultConfigPath)); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	cfg.normalize()

	if err := ValidateStruct(cfg); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgInvalidConfig, err)
	}
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgReadingConfigFile, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgParsingConfigFile, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	c.Port = getEnvAsInt(EnvPort, c.Port)
	c.APIKey = getEnv(EnvAPIKey, c.APIKey)
	c.LogLevel = getEnv(EnvLogLevel, c.LogLevel)
	c.LogFormat = getEnv(EnvLogFormat, c.LogFormat)
	c.LogDir = getEnv(EnvLogDir, c.LogDir)
	c.ServiceName = getEnv(EnvServiceName, c.ServiceName)
	c.Version = getEnv(EnvVersion, c.Version)
	c.Environment = getEnv(EnvEnvironment, c.Environment)
	c.ProfileID = getEnv(EnvProfileID, c.ProfileID)
	c.StoreDriver = getEnv(EnvStoreDriver, c.StoreDriver)
	c.SavePath = getEnv(EnvSavePath, c.SavePath)
	c.DBUser = getEnv(EnvDBUser, c.DBUser)
	c.DBPassword = getEnv(EnvDBPassword, c.DBPassword)
	c.DBHost = getEnv(EnvDBHost, c.DBHost)
	c.DBPort = getEnv(EnvDBPort, c.DBPort)
	c.DBName = getEnv(EnvDBName, c.DBName)
	c.DBMaxConns = getEnvAsInt(EnvDBMaxConns, c.DBMaxConns)
	c.DBMaxIdleTime = getEnvAsDuration(EnvDBMaxIdleTime, c.DBMaxIdleTime)
	c.DBMaxLifetime = getEnvAsDuration(EnvDBMaxLifetime, c.DBMaxLifetime)
	c.TickInterval = getEnvAsDuration(EnvTickInterval, c.TickInterval)
	c.AutosaveFrames = getEnvAsInt(EnvAutosaveFrames, c.AutosaveFrames)
	c.SaveWorkers = getEnvAsInt(EnvSaveWorkers, c.SaveWorkers)
	c.SaveQueueSize = getEnvAsInt(EnvSaveQueueSize, c.SaveQueueSize)
	c.CacheSize = getEnvAsInt(EnvCacheSize, c.CacheSize)
	c.CacheTTL = getEnvAsDuration(EnvCacheTTL, c.CacheTTL)
	c.RandomSeed = getEnvAsUint64(EnvRandomSeed, c.RandomSeed)
	c.ShutdownTimeout = getEnvAsDuration(EnvShutdownTimeout, c.ShutdownTimeout)
}

func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.StoreDriver = strings.ToLower(strings.TrimSpace(c.StoreDriver))
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsUint64(key string, defaultValue uint64) uint64 {
	v, err := strconv.ParseUint(getEnv(key, ""), 10, 64)
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(getEnv(key, ""))
	if err != nil {
		return defaultValue
	}
	return v
}

// GetDBConnString returns the PostgreSQL connection string
func (c *Config) GetDBConnString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		c.DBUser,
		c.DBPassword,
		c.DBHost,
		c.DBPort,
		c.DBName,
	)
}

// IsDevelopment reports whether source locations should be logged
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}
