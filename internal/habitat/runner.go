package habitat

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/osse101/HamsterHaven_Go/internal/domain"
	"github.com/osse101/HamsterHaven_Go/internal/logger"
	"github.com/osse101/HamsterHaven_Go/internal/metrics"
	"github.com/osse101/HamsterHaven_Go/internal/repository"
	"github.com/osse101/HamsterHaven_Go/internal/save"
	"github.com/osse101/HamsterHaven_Go/internal/worker"
)

// ErrRunnerStopped is returned by Do once the runner has exited
var ErrRunnerStopped = errors.New(ErrMsgRunnerStopped)

// JobQueue accepts background jobs without blocking
type JobQueue interface {
	TryEnqueue(job worker.Job) bool
}

// RunnerOptions configure a Runner
type RunnerOptions struct {
	Store         repository.Profile
	Jobs          JobQueue
	TickInterval  time.Duration
	FinalSaveWait time.Duration
	CommandBuffer int
	Clock         func() time.Time
}

type command struct {
	fn   func(*Habitat) error
	done chan error
}

// Runner drives a habitat on a fixed-rate ticker. Ticks and commands are
// executed on the Run goroutine only.
type Runner struct {
	habitat   *Habitat
	store     repository.Profile
	jobs      JobQueue
	interval  time.Duration
	finalWait time.Duration
	clock     func() time.Time

	commands chan command
	stopped  chan struct{}
}

// NewRunner creates a runner for a habitat
func NewRunner(h *Habitat, opts RunnerOptions) *Runner {
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.FinalSaveWait <= 0 {
		opts.FinalSaveWait = DefaultFinalSaveWait
	}
	if opts.CommandBuffer <= 0 {
		opts.CommandBuffer = DefaultCommandBuffer
	}
	if opts.Clock == nil {
		opts.Clock = time.Now
	}
	return &Runner{
		habitat:   h,
		store:     opts.Store,
		jobs:      opts.Jobs,
		interval:  opts.TickInterval,
		finalWait: opts.FinalSaveWait,
		clock:     opts.Clock,
		commands:  make(chan command, opts.CommandBuffer),
		stopped:   make(chan struct{}),
	}
}

// Load restores the habitat from the store. Any failure falls back to a
// fresh profile; it is logged and never returned.
func (r *Runner) Load(ctx context.Context) {
	log := logger.FromContext(ctx)
	id := r.habitat.ProfileID()

	p, err := r.store.Load(ctx, id)
	switch {
	case errors.Is(err, domain.ErrProfileNotFound):
		log.Info(LogMsgProfileMissing, "profile_id", id)
		p = save.New(id)
	case err != nil:
		log.Warn(LogMsgProfileLoadFailed, "profile_id", id, "error", err)
		p = save.New(id)
	default:
		log.Info(LogMsgProfileLoaded, "profile_id", id, "active", p.Run.Active, "seeds", p.Meta.Seeds)
	}
	r.habitat.Restore(p)
	metrics.HamstersAlive.Set(float64(r.habitat.Alive()))
}

// Run ticks the habitat until ctx is cancelled, then writes a final save
// synchronously.
func (r *Runner) Run(ctx context.Context) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRunnerStarted, "profile_id", r.habitat.ProfileID(), "interval", r.interval)

	ticker := time.NewTicker(r.interval)
	defer ticker.Stop()
	defer close(r.stopped)

	for {
		select {
		case <-ctx.Done():
			r.finalSave(log)
			log.Info(LogMsgRunnerStopped, "profile_id", r.habitat.ProfileID(), "frame", r.habitat.Frame())
			return
		case cmd := <-r.commands:
			cmd.done <- cmd.fn(r.habitat)
		case <-ticker.C:
			r.tick(ctx)
		}
	}
}

func (r *Runner) tick(ctx context.Context) {
	start := time.Now()
	res := r.habitat.Tick(ctx, r.clock())
	metrics.TickDuration.Observe(time.Since(start).Seconds())
	metrics.TicksProcessed.Inc()
	metrics.HamstersAlive.Set(float64(r.habitat.Alive()))

	if res.SaveDue {
		r.enqueueSave(ctx)
	}
}

func (r *Runner) enqueueSave(ctx context.Context) {
	if r.jobs == nil {
		return
	}
	job := worker.NewSaveJob(r.store, r.habitat.Snapshot(r.clock()))
	if !r.jobs.TryEnqueue(job) {
		logger.FromContext(ctx).Warn(LogMsgSaveQueueFull, "profile_id", r.habitat.ProfileID(), "frame", r.habitat.Frame())
	}
}

func (r *Runner) finalSave(log *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), r.finalWait)
	defer cancel()

	if err := worker.NewSaveJob(r.store, r.habitat.Snapshot(r.clock())).Process(ctx); err != nil {
		log.Error(LogMsgFinalSaveFailed, "profile_id", r.habitat.ProfileID(), "error", err)
		return
	}
	log.Info(LogMsgFinalSaveCompleted, "profile_id", r.habitat.ProfileID())
}

// Do runs fn on the tick goroutine between two ticks and returns its error.
// fn must not retain the habitat or any hamster after it returns.
func (r *Runner) Do(ctx context.Context, fn func(*Habitat) error) error {
	cmd := command{fn: fn, done: make(chan error, 1)}
	select {
	case r.commands <- cmd:
	case <-r.stopped:
		return ErrRunnerStopped
	case <-ctx.Done():
		return ctx.Err()
	}

	select {
	case err := <-cmd.done:
		return err
	case <-r.stopped:
		// Run may have answered just before exiting
		select {
		case err := <-cmd.done:
			return err
		default:
			return ErrRunnerStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// SaveNow enqueues an immediate save of the current state
func (r *Runner) SaveNow(ctx context.Context) error {
	return r.Do(ctx, func(*Habitat) error {
		r.enqueueSave(ctx)
		return nil
	})
}

// Now returns the runner's clock reading
func (r *Runner) Now() time.Time { return r.clock() }

// Done is closed once Run has returned and the final save is written
func (r *Runner) Done() <-chan struct{} { return r.stopped }
