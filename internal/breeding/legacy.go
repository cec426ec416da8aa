package breeding

import (
	"github.com/osse101/HamsterHaven_Go/internal/hamster"
	"github.com/osse101/HamsterHaven_Go/internal/meta"
)

// Legacy growth on a well-kept death
const (
	// WellKeptAverage is the vital average a hamster must exceed at death
	WellKeptAverage = 30.0

	VitalStep         = 5
	VitalCap          = 50
	MaxStatStep       = 5
	MaxStatCap        = hamster.HardMaxStat - hamster.BaseMaxStat
	LifespanStep      = meta.FramesPerDay / 2
	LifespanCapFrames = 5 * meta.FramesPerDay
)

// DeathLegacy returns the legacy a dying hamster leaves behind. A well-kept
// hamster grows each field by one capped step; otherwise its legacy carries
// over unchanged. Legacy never shrinks.
func DeathLegacy(h *hamster.Hamster) hamster.Legacy {
	l := h.Legacy()
	if h.AverageVitals() <= WellKeptAverage {
		return l
	}
	return hamster.Legacy{
		Hunger:         grow(l.Hunger, VitalStep, VitalCap),
		Happiness:      grow(l.Happiness, VitalStep, VitalCap),
		Energy:         grow(l.Energy, VitalStep, VitalCap),
		LifespanFrames: grow(l.LifespanFrames, LifespanStep, LifespanCapFrames),
		MaxStat:        grow(l.MaxStat, MaxStatStep, MaxStatCap),
	}
}

func grow[T int | int64](v, step, limit T) T {
	if v >= limit {
		return v
	}
	return min(v+step, limit)
}

// MergePending folds another death's legacy into the pending legacy by
// keeping the maximum of each field.
func MergePending(pending *hamster.Legacy, next hamster.Legacy) *hamster.Legacy {
	if pending == nil {
		l := next
		return &l
	}
	merged := Inherit(*pending, next)
	return &merged
}
