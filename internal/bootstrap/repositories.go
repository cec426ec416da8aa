package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/osse101/HamsterHaven_Go/internal/config"
	"github.com/osse101/HamsterHaven_Go/internal/database"
	"github.com/osse101/HamsterHaven_Go/internal/database/postgres"
	"github.com/osse101/HamsterHaven_Go/internal/filestore"
	"github.com/osse101/HamsterHaven_Go/internal/repository"
)

// ProfileStore is a profile repository that can report its health
type ProfileStore interface {
	repository.Profile
	Ping(ctx context.Context) error
}

// Stores holds the persistence backends chosen by configuration
type Stores struct {
	Profile ProfileStore
	// History is nil for the file driver
	History *postgres.RunHistoryRepository

	close func()
}

// Close releases any connections held by the stores
func (s *Stores) Close() {
	if s.close != nil {
		s.close()
	}
}

// OpenStores creates the profile store for cfg.StoreDriver. The postgres
// driver applies pending migrations before connecting.
func OpenStores(ctx context.Context, cfg *config.Config) (*Stores, error) {
	switch cfg.StoreDriver {
	case config.StoreDriverFile:
		slog.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver, "path", cfg.SavePath)
		return &Stores{Profile: filestore.New(cfg.SavePath)}, nil

	case config.StoreDriverPostgres:
		connString := cfg.GetDBConnString()
		if err := database.Migrate(ctx, connString); err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedMigrate, err)
		}
		slog.Info(LogMsgMigrationsApplied)

		pool, err := database.NewPool(ctx, database.PoolSettings{
			ConnString:  connString,
			MaxConns:    cfg.DBMaxConns,
			MaxIdle:     cfg.DBMaxIdleTime,
			MaxLifetime: cfg.DBMaxLifetime,
		})
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedConnect, err)
		}
		slog.Info(LogMsgStoreOpened, "driver", cfg.StoreDriver, "db", cfg.DBName)
		return &Stores{
			Profile: postgres.NewProfileRepository(pool, cfg.CacheSize, cfg.CacheTTL),
			History: postgres.NewRunHistoryRepository(pool),
			close:   pool.Close,
		}, nil
	}
	return nil, fmt.Errorf("%s: %q", ErrMsgUnknownStoreDriver, cfg.StoreDriver)
}
