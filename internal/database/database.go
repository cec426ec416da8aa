// Package database opens the Postgres pool backing the profile store and
// applies its migrations.
package database

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PoolSettings size the pool behind the profile store. Traffic is one
// profile load at startup, autosaves from the save workers and the run
// history subscriber, so the pool stays small.
type PoolSettings struct {
	ConnString  string
	MaxConns    int
	MaxIdle     time.Duration
	MaxLifetime time.Duration
}

// poolConfig parses the connection string and applies the settings.
// MaxConns is clamped to [1, MaxConnections]; zero durations keep pgx defaults.
func (s PoolSettings) poolConfig() (*pgxpool.Config, error) {
	config, err := pgxpool.ParseConfig(s.ConnString)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToParseConnString, err)
	}

	conns := int32(min(max(s.MaxConns, 1), MaxConnections))
	config.MaxConns = conns
	config.MinConns = min(DefaultMinConnections, conns)
	if s.MaxIdle > 0 {
		config.MaxConnIdleTime = s.MaxIdle
	}
	if s.MaxLifetime > 0 {
		config.MaxConnLifetime = s.MaxLifetime
	}
	config.ConnConfig.RuntimeParams[RuntimeParamAppName] = ApplicationName
	return config, nil
}

// NewPool connects to Postgres and verifies the connection with a ping
func NewPool(ctx context.Context, s PoolSettings) (*pgxpool.Pool, error) {
	config, err := s.poolConfig()
	if err != nil {
		return nil, err
	}

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToCreatePool, err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToPingDatabase, err)
	}

	slog.Default().Info(LogMsgSuccessfullyConnectedToDatabase, "max_conns", config.MaxConns)
	return pool, nil
}
