package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/osse101/HamsterHaven_Go/internal/config"
	"github.com/osse101/HamsterHaven_Go/internal/logger"
)

// SetupLogger initializes the application logger. When cfg.LogDir is set,
// output goes to stdout and a per-session log file; the caller must close
// the returned file, which is nil otherwise.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	var (
		w       io.Writer = os.Stdout
		logFile *os.File
	)
	if cfg.LogDir != "" {
		f, err := logger.OpenSessionFile(cfg.LogDir)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
		}
		logFile = f
		w = io.MultiWriter(os.Stdout, f)
	}

	loggerConfig := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	)
	logger.InitLoggerWithWriter(loggerConfig, w)

	slog.Info(LogMsgLoggingInitialized, "level", loggerConfig.LogLevel(), "format", cfg.LogFormat)
	slog.Info(LogMsgStartingApp,
		"environment", cfg.Environment,
		"version", cfg.Version,
		"profile_id", cfg.ProfileID)
	slog.Debug(LogMsgConfigurationLoaded,
		"store_driver", cfg.StoreDriver,
		"save_path", cfg.SavePath,
		"db_host", cfg.DBHost,
		"db_name", cfg.DBName,
		"port", cfg.Port,
		"tick_interval", cfg.TickInterval)

	return logFile, nil
}
