package worker

import (
	"context"
	"fmt"

	"github.com/osse101/HamsterHaven_Go/internal/logger"
	"github.com/osse101/HamsterHaven_Go/internal/metrics"
	"github.com/osse101/HamsterHaven_Go/internal/save"
)

// ProfileSaver persists a profile snapshot
type ProfileSaver interface {
	Save(ctx context.Context, profile *save.Profile) error
}

// SaveJob writes one immutable profile snapshot
type SaveJob struct {
	Saver   ProfileSaver
	Profile *save.Profile
}

// NewSaveJob creates a save job
func NewSaveJob(saver ProfileSaver, profile *save.Profile) *SaveJob {
	return &SaveJob{Saver: saver, Profile: profile}
}

// Process saves the snapshot and records the outcome
func (j *SaveJob) Process(ctx context.Context) error {
	metrics.SavesTotal.Inc()
	if err := j.Saver.Save(ctx, j.Profile); err != nil {
		metrics.SaveFailures.Inc()
		return fmt.Errorf("%s %s: %w", ErrMsgSaveFailed, j.Profile.ID, err)
	}
	logger.FromContext(ctx).Debug(LogMsgProfileSaved, "profile_id", j.Profile.ID, "frame", j.Profile.Run.Frame)
	return nil
}
