package repository

import (
	"context"

	"github.com/osse101/HamsterHaven_Go/internal/save"
)

// Profile defines the interface for profile persistence.
// Load returns domain.ErrProfileNotFound when no profile exists for id.
type Profile interface {
	Load(ctx context.Context, id string) (*save.Profile, error)
	Save(ctx context.Context, profile *save.Profile) error
	List(ctx context.Context) ([]string, error)
}
