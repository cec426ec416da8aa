package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HamsterHaven_Go/internal/domain"
	"github.com/osse101/HamsterHaven_Go/internal/logger"
	"github.com/osse101/HamsterHaven_Go/internal/repository"
	"github.com/osse101/HamsterHaven_Go/internal/save"
)

// ProfileRepository stores profiles as JSONB documents
type ProfileRepository struct {
	pool  *pgxpool.Pool
	cache *profileCache
}

var _ repository.Profile = (*ProfileRepository)(nil)

// NewProfileRepository creates a new ProfileRepository with a read cache
func NewProfileRepository(pool *pgxpool.Pool, cacheSize int, cacheTTL time.Duration) *ProfileRepository {
	return &ProfileRepository{
		pool:  pool,
		cache: newProfileCache(cacheSize, cacheTTL),
	}
}

// Load fetches a profile, consulting the cache first
func (r *ProfileRepository) Load(ctx context.Context, id string) (*save.Profile, error) {
	doc, hit := r.cache.Get(id)
	if hit {
		logger.FromContext(ctx).Debug(LogMsgProfileCacheHit, "profile_id", id)
	} else {
		err := r.pool.QueryRow(ctx, queryLoadProfile, id).Scan(&doc)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrProfileNotFound
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadProfile, err)
		}
		r.cache.Set(id, doc)
	}

	var p save.Profile
	if err := json.Unmarshal(doc, &p); err != nil {
		r.cache.Invalidate(id)
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToDecodeProfile, err)
	}
	if p.ID == "" {
		p.ID = id
	}
	p.Normalize()
	return &p, nil
}

// Save upserts a profile and drops any cached copy
func (r *ProfileRepository) Save(ctx context.Context, p *save.Profile) error {
	if p == nil || p.ID == "" {
		return fmt.Errorf("%w: profile id required", domain.ErrInvalidInput)
	}

	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncodeProfile, err)
	}

	r.cache.Invalidate(p.ID)
	if _, err := r.pool.Exec(ctx, queryUpsertProfile, p.ID, p.Version, p.Meta.Seeds, p.Run.Active, doc); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToSaveProfile, err)
	}
	return nil
}

// List returns every stored profile ID
func (r *ProfileRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, queryListProfiles)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListProfiles, err)
	}
	ids, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListProfiles, err)
	}
	return ids, nil
}

// Ping checks that the database is reachable
func (r *ProfileRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}
