package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/HamsterHaven_Go/internal/event"
	"github.com/osse101/HamsterHaven_Go/internal/logger"
	"github.com/osse101/HamsterHaven_Go/internal/worker"
)

// RunSummary is one finished run
type RunSummary struct {
	RunID          uuid.UUID `json:"run_id"`
	HamstersRaised int       `json:"hamsters_raised"`
	CoinsLeft      float64   `json:"coins_left"`
	SeedsEarned    int       `json:"seeds_earned"`
	EndedAt        time.Time `json:"ended_at"`
}

// RunHistoryRepository records finished runs per profile
type RunHistoryRepository struct {
	pool *pgxpool.Pool
}

// NewRunHistoryRepository creates a new RunHistoryRepository
func NewRunHistoryRepository(pool *pgxpool.Pool) *RunHistoryRepository {
	return &RunHistoryRepository{pool: pool}
}

// Record inserts a finished run
func (r *RunHistoryRepository) Record(ctx context.Context, profileID string, run RunSummary) error {
	if run.RunID == uuid.Nil {
		run.RunID = uuid.New()
	}
	if run.EndedAt.IsZero() {
		run.EndedAt = time.Now()
	}
	_, err := r.pool.Exec(ctx, queryInsertRun,
		run.RunID, profileID, run.HamstersRaised, run.CoinsLeft, run.SeedsEarned, run.EndedAt)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToRecordRun, err)
	}
	return nil
}

// Recent returns the latest runs of a profile, newest first
func (r *RunHistoryRepository) Recent(ctx context.Context, profileID string, limit int) ([]RunSummary, error) {
	if limit <= 0 {
		limit = DefaultHistorySize
	}
	rows, err := r.pool.Query(ctx, queryRecentRuns, profileID, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRuns, err)
	}
	runs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (RunSummary, error) {
		var s RunSummary
		err := row.Scan(&s.RunID, &s.HamstersRaised, &s.CoinsLeft, &s.SeedsEarned, &s.EndedAt)
		return s, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToQueryRuns, err)
	}
	return runs, nil
}

// JobQueue accepts background work without blocking the publisher
type JobQueue interface {
	TryEnqueue(job worker.Job) bool
}

// recordRunJob writes one finished run off the tick goroutine
type recordRunJob struct {
	repo      *RunHistoryRepository
	profileID string
	run       RunSummary
}

func (j *recordRunJob) Process(ctx context.Context) error {
	if err := j.repo.Record(ctx, j.profileID, j.run); err != nil {
		return err
	}
	logger.FromContext(ctx).Info(LogMsgRunRecorded, "profile_id", j.profileID, "seeds", j.run.SeedsEarned)
	return nil
}

// Subscribe records every game over published for profileID through queue
func (r *RunHistoryRepository) Subscribe(bus event.Bus, profileID string, queue JobQueue) {
	bus.Subscribe(event.GameOver, func(ctx context.Context, evt event.Event) error {
		p, err := event.DecodePayload[event.GameOverPayloadV1](evt.Payload)
		if err != nil {
			return err
		}
		job := &recordRunJob{
			repo:      r,
			profileID: profileID,
			run: RunSummary{
				HamstersRaised: p.HamstersRaised,
				CoinsLeft:      float64(p.CoinsLeft),
				SeedsEarned:    p.SeedsEarned,
				EndedAt:        time.Unix(evt.Timestamp, 0),
			},
		}
		if !queue.TryEnqueue(job) {
			logger.FromContext(ctx).Warn(LogMsgRunDropped, "profile_id", profileID)
		}
		return nil
	})
}
