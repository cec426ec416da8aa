package postgres

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/osse101/HamsterHaven_Go/internal/database"
	"github.com/osse101/HamsterHaven_Go/internal/domain"
	"github.com/osse101/HamsterHaven_Go/internal/event"
	"github.com/osse101/HamsterHaven_Go/internal/hamster"
	"github.com/osse101/HamsterHaven_Go/internal/save"
	"github.com/osse101/HamsterHaven_Go/internal/worker"
)

var testPool *pgxpool.Pool

func TestMain(m *testing.M) {
	flag.Parse()

	var terminate func()
	if !testing.Short() {
		testPool, terminate = setupDatabase(context.Background())
	}

	code := m.Run()

	if testPool != nil {
		testPool.Close()
	}
	if terminate != nil {
		terminate()
	}
	os.Exit(code)
}

func setupDatabase(ctx context.Context) (*pgxpool.Pool, func()) {
	// testcontainers panics when no Docker daemon is reachable
	defer func() {
		if r := recover(); r != nil {
			fmt.Printf("Recovered from panic in setupDatabase: %v\n", r)
		}
	}()

	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		fmt.Printf("WARNING: Failed to start postgres container: %v\n", err)
		return nil, nil
	}
	terminate := func() { _ = pgContainer.Terminate(ctx) }

	connStr, err := pgContainer.ConnectionString(ctx, "sslmode=disable")
	if err == nil {
		err = database.Migrate(ctx, connStr)
	}
	var pool *pgxpool.Pool
	if err == nil {
		pool, err = database.NewPool(ctx, database.PoolSettings{ConnString: connStr, MaxConns: 5})
	}
	if err != nil {
		fmt.Printf("WARNING: Failed to prepare database: %v\n", err)
		terminate()
		return nil, nil
	}
	return pool, terminate
}

func requirePool(t *testing.T) *pgxpool.Pool {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	if testPool == nil {
		t.Skip("Skipping integration test: database not available")
	}
	return testPool
}

func sampleProfile(id string) *save.Profile {
	p := save.New(id)
	p.SavedAt = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	p.Meta.Seeds = 12
	p.Meta.Levels["aging_speed"] = 2
	p.PendingLegacy = &hamster.Legacy{Hunger: 5, MaxStat: 3}
	p.Run.Active = true
	p.Run.Coins = 31.5
	p.Run.HamstersRaised = 2
	p.Achievements.Unlocked = []string{"first_scoop"}
	return p
}

func TestProfileRepository_Integration(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	repo := NewProfileRepository(pool, 8, time.Minute)

	t.Run("missing profile", func(t *testing.T) {
		_, err := repo.Load(ctx, "nobody")
		assert.ErrorIs(t, err, domain.ErrProfileNotFound)
	})

	t.Run("save then load", func(t *testing.T) {
		want := sampleProfile("alice")
		require.NoError(t, repo.Save(ctx, want))

		got, err := repo.Load(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, want.Meta, got.Meta)
		assert.Equal(t, want.PendingLegacy, got.PendingLegacy)
		assert.Equal(t, want.Run.Coins, got.Run.Coins)
		assert.Equal(t, want.Achievements.Unlocked, got.Achievements.Unlocked)
		assert.Equal(t, 1, repo.cache.Len())
	})

	t.Run("save invalidates cache", func(t *testing.T) {
		p := sampleProfile("alice")
		p.Meta.Seeds = 99
		require.NoError(t, repo.Save(ctx, p))
		assert.Equal(t, 0, repo.cache.Len())

		got, err := repo.Load(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, 99, got.Meta.Seeds)
	})

	t.Run("cache hits return private copies", func(t *testing.T) {
		a, err := repo.Load(ctx, "alice")
		require.NoError(t, err)
		a.Meta.Seeds = -1

		b, err := repo.Load(ctx, "alice")
		require.NoError(t, err)
		assert.Equal(t, 99, b.Meta.Seeds)
	})

	t.Run("list", func(t *testing.T) {
		require.NoError(t, repo.Save(ctx, sampleProfile("bob")))
		ids, err := repo.List(ctx)
		require.NoError(t, err)
		assert.Subset(t, ids, []string{"alice", "bob"})
	})

	t.Run("rejects empty id", func(t *testing.T) {
		assert.ErrorIs(t, repo.Save(ctx, &save.Profile{}), domain.ErrInvalidInput)
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, repo.Ping(ctx))
	})
}

func TestProfileRepository_ConcurrentSaves(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	repo := NewProfileRepository(pool, 8, time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(seeds int) {
			defer wg.Done()
			p := sampleProfile("race")
			p.Meta.Seeds = seeds
			assert.NoError(t, repo.Save(ctx, p))
		}(i)
	}
	wg.Wait()

	got, err := repo.Load(ctx, "race")
	require.NoError(t, err)
	assert.GreaterOrEqual(t, got.Meta.Seeds, 0)
	assert.Less(t, got.Meta.Seeds, 10)
}

func TestRunHistoryRepository_Integration(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	repo := NewRunHistoryRepository(pool)

	base := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.Record(ctx, "history", RunSummary{
			HamstersRaised: i + 1,
			SeedsEarned:    10 * (i + 1),
			EndedAt:        base.Add(time.Duration(i) * time.Hour),
		}))
	}

	runs, err := repo.Recent(ctx, "history", 2)
	require.NoError(t, err)
	require.Len(t, runs, 2)
	assert.Equal(t, 30, runs[0].SeedsEarned, "newest first")
	assert.Equal(t, 20, runs[1].SeedsEarned)
}

func TestRunHistoryRepository_Subscribe(t *testing.T) {
	pool := requirePool(t)
	ctx := context.Background()
	repo := NewRunHistoryRepository(pool)
	bus := event.NewMemoryBus()
	workers := worker.NewPool(1, 4)
	workers.Start()

	repo.Subscribe(bus, "subscriber", workers)
	require.NoError(t, bus.Publish(ctx, event.New(event.GameOver, event.GameOverPayloadV1{
		HamstersRaised: 4,
		CoinsLeft:      17,
		SeedsEarned:    21,
	})))
	workers.Stop()

	runs, err := repo.Recent(ctx, "subscriber", 0)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 4, runs[0].HamstersRaised)
	assert.Equal(t, 21, runs[0].SeedsEarned)
	assert.InDelta(t, 17.0, runs[0].CoinsLeft, 0.001)
}
