// Package handler exposes the habitat over HTTP. Every handler funnels its
// work through Runner.Do so it executes on the tick goroutine.
package handler

import (
	"context"
	"time"

	"github.com/osse101/HamsterHaven_Go/internal/habitat"
)

// Runner executes commands against the live habitat
type Runner interface {
	Do(ctx context.Context, fn func(*habitat.Habitat) error) error
	SaveNow(ctx context.Context) error
	Now() time.Time
}

// HabitatHandler serves the habitat API
type HabitatHandler struct {
	runner Runner
}

// NewHabitatHandler creates a handler backed by a runner
func NewHabitatHandler(runner Runner) *HabitatHandler {
	return &HabitatHandler{runner: runner}
}

// query runs a read-only function on the tick goroutine and returns its result
func query[T any](ctx context.Context, r Runner, fn func(*habitat.Habitat) T) (T, error) {
	var out T
	err := r.Do(ctx, func(h *habitat.Habitat) error {
		out = fn(h)
		return nil
	})
	return out, err
}
